// Package session projects identity-provider state into the binary UI mode.
// The Session value is passed in explicitly by whoever talked to the
// provider; nothing here reads ambient auth context. The client performs no
// local authorization check before mutations: the remote store stays
// authoritative for that.
package session

// Mode is the UI mode derived from session presence.
type Mode int

const (
	// ModeAnonymous shows the sign-in call to action.
	ModeAnonymous Mode = iota
	// ModeAuthenticated shows the identity label and sign-out.
	ModeAuthenticated
)

// Session is the slice of provider state the client consumes.
type Session struct {
	Authenticated bool
	DisplayName   string
}

// Anonymous is the zero-value session for signed-out users.
var Anonymous = Session{}

// Mode returns the UI mode for this session.
func (s Session) Mode() Mode {
	if s.Authenticated {
		return ModeAuthenticated
	}
	return ModeAnonymous
}

// Greeting returns the header label shown for this session.
func (s Session) Greeting() string {
	if !s.Authenticated {
		return "Sign in"
	}
	if s.DisplayName == "" {
		return "Signed in"
	}
	return "Signed in as " + s.DisplayName
}

package api

import (
	"errors"
	"fmt"
)

// ErrExpenseNotFound is returned when the remote store has no expense with
// the requested id.
var ErrExpenseNotFound = errors.New("expense not found")

// TransportError covers network failures, non-2xx responses without a
// structured body, and response decode failures. Status is zero when the
// request never produced an HTTP response.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: remote store returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ReceiptRejectedError is returned when the remote store explicitly rejects
// an uploaded receipt, e.g. an unparseable image. Detail carries the
// server's message verbatim for display to the user.
type ReceiptRejectedError struct {
	Detail string
}

func (e *ReceiptRejectedError) Error() string {
	return fmt.Sprintf("receipt rejected: %s", e.Detail)
}

// Package store maintains the local copy of the remote expense collection.
//
// The policy is write-through and server-confirms-first: the collection is
// mutated only in the success continuation of a remote call, never
// optimistically. Mutations are serialized by a mutex; the remote calls
// themselves run unlocked, so operations of different kinds that are in
// flight at the same time resolve last-write-wins on the collection.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/setiawand/expensebuddy/internal/logger"
	"github.com/setiawand/expensebuddy/internal/models"
)

// ErrReloadFailed marks a receipt upload that the server accepted but whose
// follow-up reload of the collection failed. The receipt is stored remotely;
// only the local view is stale.
var ErrReloadFailed = errors.New("reload after successful upload failed")

// Remote is the slice of the expense store API the collection depends on.
// *api.Client satisfies it.
type Remote interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, description string, amount decimal.Decimal) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	UploadReceipt(ctx context.Context, filename string, file io.Reader) error
}

// Store holds the ordered local expense collection plus the per-operation
// busy flags that gate UI affordances.
type Store struct {
	remote Remote

	mu       sync.Mutex
	expenses []models.Expense

	addInFlight    atomic.Bool
	uploadInFlight atomic.Bool
}

// New creates an empty store backed by the given remote.
func New(remote Remote) *Store {
	return &Store{remote: remote}
}

// Expenses returns a snapshot copy of the current collection in store order.
func (s *Store) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// AddInFlight reports whether an add operation is currently in flight.
func (s *Store) AddInFlight() bool {
	return s.addInFlight.Load()
}

// UploadInFlight reports whether a receipt upload is currently in flight.
func (s *Store) UploadInFlight() bool {
	return s.uploadInFlight.Load()
}

// Load fetches the full remote collection and replaces the local one,
// preserving the order the server returned. On failure the local collection
// is left untouched; call sites decide whether to surface or swallow the
// error.
func (s *Store) Load(ctx context.Context) error {
	expenses, err := s.remote.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()

	logger.Log.Debug().Int("count", len(expenses)).Msg("Replaced local expense collection")
	return nil
}

// Add creates the expense remotely and, once the server acknowledges it,
// appends the returned record to the end of the collection. On failure
// nothing changes locally and the error is returned so the caller can keep
// the user's input for a retry.
func (s *Store) Add(ctx context.Context, description string, amount decimal.Decimal) (models.Expense, error) {
	s.addInFlight.Store(true)
	defer s.addInFlight.Store(false)

	created, err := s.remote.CreateExpense(ctx, description, amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("add expense: %w", err)
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, created)
	s.mu.Unlock()

	logger.Log.Debug().Str("id", created.ID).Msg("Appended expense after server ack")
	return created, nil
}

// Remove deletes the expense remotely and, on acknowledgment, drops the
// matching entry from the collection. A locally absent id is a tolerated
// no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.remote.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("remove expense: %w", err)
	}

	s.mu.Lock()
	for i, exp := range s.expenses {
		if exp.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	logger.Log.Debug().Str("id", id).Msg("Removed expense after server ack")
	return nil
}

// UploadReceipt submits a receipt image and, on acceptance, performs exactly
// one full reload. The upload response itself carries nothing usable: how
// many records the server extracted and their parsed fields are only
// observable through a fresh list.
func (s *Store) UploadReceipt(ctx context.Context, filename string, file io.Reader) error {
	s.uploadInFlight.Store(true)
	defer s.uploadInFlight.Store(false)

	if err := s.remote.UploadReceipt(ctx, filename, file); err != nil {
		return fmt.Errorf("upload receipt: %w", err)
	}

	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}

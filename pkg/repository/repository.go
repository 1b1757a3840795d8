// Package repository defines the persistence contracts the services depend
// on. Implementations live in infra/repository.
package repository

import (
	"context"

	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
)

// AccountRepository is the data access contract for account records.
type AccountRepository interface {
	// Create inserts a new account. Duplicate number, email or contact
	// surfaces as domain.ErrConflict.
	Create(ctx context.Context, a *account.Account) error

	// GetByNumber retrieves an account by its external number, returning
	// domain.ErrNotFound when no such account exists.
	GetByNumber(ctx context.Context, number string) (*account.Account, error)

	// ExistsByNumber reports whether an account number is already taken.
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// AdjustBalance applies balance += delta as one guarded update. It
	// returns domain.ErrInsufficientFunds when the result would be
	// negative and domain.ErrNotFound when the account does not exist.
	AdjustBalance(ctx context.Context, number string, delta money.Amount) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, number, hash string) error

	// SetActive flips the active flag.
	SetActive(ctx context.Context, number string, active bool) error

	// List returns all accounts in creation order.
	List(ctx context.Context) ([]*account.Account, error)
}

// LedgerRepository is the data access contract for the append-only
// transaction ledger.
type LedgerRepository interface {
	// Append inserts a new ledger entry.
	Append(ctx context.Context, e *account.TransactionEntry) error

	// ListByAccount returns all entries for an account in insertion order.
	ListByAccount(ctx context.Context, number string) ([]*account.TransactionEntry, error)
}

// UnitOfWork provides a transaction boundary and repository access bound to
// that transaction. All repositories obtained inside Do share one database
// session, so a balance mutation and its ledger entry commit or roll back
// together.
type UnitOfWork interface {
	// Do executes fn within a transaction. If fn returns an error the
	// transaction is rolled back and the error is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Accounts returns the account repository bound to the current session.
	Accounts() AccountRepository

	// Ledger returns the ledger repository bound to the current session.
	Ledger() LedgerRepository
}

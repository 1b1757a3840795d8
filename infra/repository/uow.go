// Package repository implements the persistence contracts on GORM.
package repository

import (
	"context"

	"github.com/mfarghaly/bankbook/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. Repositories obtained from a UoW inside Do are bound to the
// running transaction, so a balance write and its ledger entry cannot
// commit separately.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs fn inside a database transaction. A nested call joins the
// transaction already in progress.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Accounts returns the account repository bound to the current session.
func (u *UoW) Accounts() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

// Ledger returns the ledger repository bound to the current session.
func (u *UoW) Ledger() repository.LedgerRepository {
	return NewLedgerRepository(u.session())
}

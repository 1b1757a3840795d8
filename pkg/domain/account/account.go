// Package account defines the core entities of the ledgered account model.
package account

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mfarghaly/bankbook/pkg/money"
)

// TransactionType classifies a ledger entry.
type TransactionType string

// Ledger entry types.
const (
	TypeCredit   TransactionType = "Credit"
	TypeDebit    TransactionType = "Debit"
	TypeTransfer TransactionType = "Transfer"
)

// Account represents a bank account. The internal ID is system-assigned and
// never shown to users; Number is the externally visible identifier.
type Account struct {
	ID           uuid.UUID
	Number       string
	Name         string
	DOB          string
	City         string
	PasswordHash string
	Balance      money.Money
	Contact      string
	Email        string
	Address      string
	Active       bool
	CreatedAt    time.Time
}

// TransactionEntry is one append-only ledger record. Entries are created in
// the same transaction as the balance mutation they describe and are never
// modified afterwards.
type TransactionEntry struct {
	ID            uuid.UUID
	AccountNumber string
	Type          TransactionType
	Amount        money.Money
	CreatedAt     time.Time
}

// NewNumber generates a random ten-digit account number. Uniqueness is not
// guaranteed by construction; callers must check against existing records
// and retry on collision.
func NewNumber() string {
	return fmt.Sprintf("%010d", rand.Int63n(9_000_000_000)+1_000_000_000)
}

// NewEntry creates a ledger entry stamped with the current time.
func NewEntry(number string, typ TransactionType, amount money.Money) *TransactionEntry {
	return &TransactionEntry{
		ID:            uuid.New(),
		AccountNumber: number,
		Type:          typ,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}
}

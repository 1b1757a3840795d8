// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"size:10;uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	DOB          string    `gorm:"column:dob;not null"`
	City         string
	PasswordHash string `gorm:"not null"`
	Balance      int64  `gorm:"not null"`
	Contact      string `gorm:"size:10;uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Address      string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// TransactionEntry represents one append-only ledger record. Rows are only
// ever inserted. AccountNumber is a foreign key into accounts(number).
type TransactionEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountNumber string    `gorm:"size:10;index;not null"`
	Account       Account   `gorm:"foreignKey:AccountNumber;references:Number"`
	Type          string    `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the TransactionEntry model.
func (TransactionEntry) TableName() string {
	return "transaction_entries"
}

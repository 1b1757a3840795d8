package repository

import (
	"context"
	"fmt"

	"github.com/mfarghaly/bankbook/infra/repository/model"
	"github.com/mfarghaly/bankbook/pkg/domain"
	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
	"github.com/mfarghaly/bankbook/pkg/repository"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a ledger repository using the provided
// *gorm.DB session.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Append(ctx context.Context, e *account.TransactionEntry) error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("ledger amount must be positive: %w", domain.ErrInvalidArgument)
	}
	m := model.TransactionEntry{
		ID:            e.ID,
		AccountNumber: e.AccountNumber,
		Type:          string(e.Type),
		Amount:        e.Amount.Amount(),
		CreatedAt:     e.CreatedAt,
	}
	return mapGormError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, number string) ([]*account.TransactionEntry, error) {
	var ms []model.TransactionEntry
	err := r.db.WithContext(ctx).
		Where("account_number = ?", number).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	out := make([]*account.TransactionEntry, 0, len(ms))
	for i := range ms {
		out = append(out, &account.TransactionEntry{
			ID:            ms[i].ID,
			AccountNumber: ms[i].AccountNumber,
			Type:          account.TransactionType(ms[i].Type),
			Amount:        money.FromData(ms[i].Amount),
			CreatedAt:     ms[i].CreatedAt,
		})
	}
	return out, nil
}

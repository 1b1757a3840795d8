package repository

import (
	"context"

	"github.com/mfarghaly/bankbook/infra/repository/model"
	"github.com/mfarghaly/bankbook/pkg/domain"
	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
	"github.com/mfarghaly/bankbook/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided
// *gorm.DB session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := mapAccountToModel(a)
	return mapGormError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *accountRepository) GetByNumber(ctx context.Context, number string) (*account.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, "number = ?", number).Error; err != nil {
		return nil, mapGormError(err)
	}
	return mapModelToAccount(&m), nil
}

func (r *accountRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("number = ?", number).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

// AdjustBalance applies the delta with the non-negativity check folded into
// the UPDATE predicate, so two concurrent debits cannot both pass a check
// against a stale balance.
func (r *accountRepository) AdjustBalance(ctx context.Context, number string, delta money.Amount) error {
	res := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("number = ? AND balance + ? >= 0", number, delta).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return mapGormError(res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}
	exists, err := r.ExistsByNumber(ctx, number)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientFunds
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, number, hash string) error {
	return r.updateColumn(ctx, number, "password_hash", hash)
}

func (r *accountRepository) SetActive(ctx context.Context, number string, active bool) error {
	return r.updateColumn(ctx, number, "active", active)
}

func (r *accountRepository) updateColumn(ctx context.Context, number, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("number = ?", number).Update(column, value)
	if res.Error != nil {
		return mapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var ms []model.Account
	if err := r.db.WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, mapGormError(err)
	}
	out := make([]*account.Account, 0, len(ms))
	for i := range ms {
		out = append(out, mapModelToAccount(&ms[i]))
	}
	return out, nil
}

func mapAccountToModel(a *account.Account) model.Account {
	return model.Account{
		ID:           a.ID,
		Number:       a.Number,
		Name:         a.Name,
		DOB:          a.DOB,
		City:         a.City,
		PasswordHash: a.PasswordHash,
		Balance:      a.Balance.Amount(),
		Contact:      a.Contact,
		Email:        a.Email,
		Address:      a.Address,
		Active:       a.Active,
	}
}

func mapModelToAccount(m *model.Account) *account.Account {
	return &account.Account{
		ID:           m.ID,
		Number:       m.Number,
		Name:         m.Name,
		DOB:          m.DOB,
		City:         m.City,
		PasswordHash: m.PasswordHash,
		Balance:      money.FromData(m.Balance),
		Contact:      m.Contact,
		Email:        m.Email,
		Address:      m.Address,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

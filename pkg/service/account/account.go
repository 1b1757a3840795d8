// Package account provides business logic for the account lifecycle:
// creation, authentication, listing and deactivation.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfarghaly/bankbook/pkg/domain"
	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
	"github.com/mfarghaly/bankbook/pkg/repository"
	"github.com/mfarghaly/bankbook/pkg/utils"
	"github.com/mfarghaly/bankbook/pkg/validation"
)

// maxNumberAttempts bounds the generate-and-check retry loop for account
// numbers. Collisions on a ten-digit space are rare, so hitting the bound
// means something is wrong with the store.
const maxNumberAttempts = 5

// Config holds the business-rule knobs for account creation.
type Config struct {
	MinInitialBalance money.Money
	BcryptCost        int
}

// Service provides account lifecycle operations.
type Service struct {
	uow    repository.UnitOfWork
	cfg    Config
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork, config and logger.
func New(uow repository.UnitOfWork, cfg Config, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// CreateParams carries the caller-supplied fields for a new account.
type CreateParams struct {
	Name           string
	DOB            string
	City           string
	Password       string
	InitialBalance money.Money
	Contact        string
	Email          string
	Address        string
}

// Create opens a new account. The initial balance must meet the configured
// minimum; email and contact number must be unused. The account number is
// generated at random and checked against existing records, retrying on
// collision.
func (s *Service) Create(ctx context.Context, p CreateParams) (*account.Account, error) {
	switch {
	case p.Name == "":
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidArgument)
	case !validation.IsPassword(p.Password):
		return nil, fmt.Errorf("password format: %w", domain.ErrInvalidArgument)
	case !validation.IsPhone(p.Contact):
		return nil, fmt.Errorf("contact number format: %w", domain.ErrInvalidArgument)
	case !validation.IsEmail(p.Email):
		return nil, fmt.Errorf("email format: %w", domain.ErrInvalidArgument)
	}
	if p.InitialBalance.Amount() < s.cfg.MinInitialBalance.Amount() {
		return nil, fmt.Errorf("initial balance below minimum %s: %w",
			s.cfg.MinInitialBalance, domain.ErrInvalidArgument)
	}

	hash, err := utils.HashPassword(p.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	var created *account.Account
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.Accounts()
		number, err := freeNumber(ctx, repo)
		if err != nil {
			return err
		}
		a := &account.Account{
			ID:           uuid.New(),
			Number:       number,
			Name:         p.Name,
			DOB:          p.DOB,
			City:         p.City,
			PasswordHash: hash,
			Balance:      p.InitialBalance,
			Contact:      p.Contact,
			Email:        p.Email,
			Address:      p.Address,
			Active:       true,
		}
		if err := repo.Create(ctx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		s.logger.Error("account creation failed", "error", err)
		return nil, err
	}
	s.logger.Info("account created", "number", created.Number)
	return created, nil
}

// freeNumber generates an account number that is not yet taken.
func freeNumber(ctx context.Context, repo repository.AccountRepository) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		number := account.NewNumber()
		taken, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", fmt.Errorf("account number space exhausted: %w", domain.ErrInternal)
}

// Authenticate returns the account matching number and password. Unknown
// numbers, wrong passwords and deactivated accounts all return
// domain.ErrNotFound so the caller cannot tell which applied.
func (s *Service) Authenticate(ctx context.Context, number, password string) (*account.Account, error) {
	a, err := s.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if !a.Active || !utils.CheckPasswordHash(password, a.PasswordHash) {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// Get retrieves an account by its external number.
func (s *Service) Get(ctx context.Context, number string) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err = uow.Accounts().GetByNumber(ctx, number)
		return err
	})
	if err != nil {
		a = nil
	}
	return
}

// List returns all accounts in creation order, for administrative listing.
func (s *Service) List(ctx context.Context) (as []*account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		as, err = uow.Accounts().List(ctx)
		return err
	})
	if err != nil {
		as = nil
	}
	return
}

// Deactivate flips an account to inactive. The account keeps its balance
// and remains listable, but can no longer authenticate. There is no
// reactivation.
func (s *Service) Deactivate(ctx context.Context, number string) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().SetActive(ctx, number, false)
	})
	if err != nil {
		return err
	}
	s.logger.Info("account deactivated", "number", number)
	return nil
}

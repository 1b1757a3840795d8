// Package banking orchestrates the account store and ledger to implement
// credit, debit, transfer and password change as atomic operations.
package banking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfarghaly/bankbook/pkg/domain"
	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
	"github.com/mfarghaly/bankbook/pkg/repository"
	"github.com/mfarghaly/bankbook/pkg/utils"
	"github.com/mfarghaly/bankbook/pkg/validation"
)

// Service provides the mutating banking operations. Every balance mutation
// and its ledger entry run in one transaction: both take effect or neither
// does.
type Service struct {
	uow        repository.UnitOfWork
	bcryptCost int
	logger     *slog.Logger
}

// New creates a new Service with a UnitOfWork, bcrypt cost and logger.
func New(uow repository.UnitOfWork, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{uow: uow, bcryptCost: bcryptCost, logger: logger}
}

// Credit adds amount to the account balance and appends a Credit entry.
func (s *Service) Credit(ctx context.Context, number string, amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("credit amount must be positive: %w", domain.ErrInvalidArgument)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Accounts().AdjustBalance(ctx, number, amount.Amount()); err != nil {
			return err
		}
		return uow.Ledger().Append(ctx, account.NewEntry(number, account.TypeCredit, amount))
	})
	s.log("credit", number, amount, err)
	return err
}

// Debit subtracts amount from the account balance and appends a Debit
// entry. The insufficient-funds check and the write happen in one guarded
// update, never against a stale read.
func (s *Service) Debit(ctx context.Context, number string, amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("debit amount must be positive: %w", domain.ErrInvalidArgument)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := uow.Accounts().AdjustBalance(ctx, number, -amount.Amount()); err != nil {
			return err
		}
		return uow.Ledger().Append(ctx, account.NewEntry(number, account.TypeDebit, amount))
	})
	s.log("debit", number, amount, err)
	return err
}

// Transfer moves amount from src to dst and appends exactly one Transfer
// entry attributed to src. The target must exist before the source is
// debited. Both balance writes and the ledger write commit or roll back
// together; the two accounts are touched in ascending number order so two
// opposite-direction transfers cannot deadlock.
func (s *Service) Transfer(ctx context.Context, src, dst string, amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive: %w", domain.ErrInvalidArgument)
	}
	if src == dst {
		return fmt.Errorf("transfer to the same account: %w", domain.ErrInvalidArgument)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.Accounts()
		exists, err := accounts.ExistsByNumber(ctx, dst)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("target account %s: %w", dst, domain.ErrNotFound)
		}
		adjustments := []struct {
			number string
			delta  money.Amount
		}{
			{src, -amount.Amount()},
			{dst, amount.Amount()},
		}
		if adjustments[1].number < adjustments[0].number {
			adjustments[0], adjustments[1] = adjustments[1], adjustments[0]
		}
		for _, adj := range adjustments {
			if err := accounts.AdjustBalance(ctx, adj.number, adj.delta); err != nil {
				return err
			}
		}
		return uow.Ledger().Append(ctx, account.NewEntry(src, account.TypeTransfer, amount))
	})
	if err != nil {
		s.logger.Error("transfer failed", "from", src, "to", dst, "amount", amount, "error", err)
		return err
	}
	s.logger.Info("transfer complete", "from", src, "to", dst, "amount", amount)
	return nil
}

// ChangePassword re-validates the new password and stores a fresh hash.
func (s *Service) ChangePassword(ctx context.Context, number, newPassword string) error {
	if !validation.IsPassword(newPassword) {
		return fmt.Errorf("password format: %w", domain.ErrInvalidArgument)
	}
	hash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().UpdatePasswordHash(ctx, number, hash)
	})
	if err != nil {
		s.logger.Error("password change failed", "number", number, "error", err)
		return err
	}
	s.logger.Info("password changed", "number", number)
	return nil
}

// Balance returns the current balance of an account.
func (s *Service) Balance(ctx context.Context, number string) (money.Money, error) {
	var balance money.Money
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := uow.Accounts().GetByNumber(ctx, number)
		if err != nil {
			return err
		}
		balance = a.Balance
		return nil
	})
	if err != nil {
		return money.Zero, err
	}
	return balance, nil
}

// History returns the account's ledger entries in chronological order.
func (s *Service) History(ctx context.Context, number string) (entries []*account.TransactionEntry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.Accounts().ExistsByNumber(ctx, number)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		entries, err = uow.Ledger().ListByAccount(ctx, number)
		return err
	})
	if err != nil {
		entries = nil
	}
	return
}

func (s *Service) log(op, number string, amount money.Money, err error) {
	if err != nil {
		s.logger.Error(op+" failed", "number", number, "amount", amount, "error", err)
		return
	}
	s.logger.Info(op+" complete", "number", number, "amount", amount)
}

package banking_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	infrarepo "github.com/mfarghaly/bankbook/infra/repository"
	"github.com/mfarghaly/bankbook/internal/testdb"
	"github.com/mfarghaly/bankbook/pkg/domain"
	"github.com/mfarghaly/bankbook/pkg/domain/account"
	"github.com/mfarghaly/bankbook/pkg/money"
	accountsvc "github.com/mfarghaly/bankbook/pkg/service/account"
	bankingsvc "github.com/mfarghaly/bankbook/pkg/service/banking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	accounts *accountsvc.Service
	banking  *bankingsvc.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	uow := infrarepo.NewUoW(db)
	minBalance, err := money.Parse("2000")
	require.NoError(t, err)
	return &fixture{
		accounts: accountsvc.New(uow, accountsvc.Config{
			MinInitialBalance: minBalance,
			BcryptCost:        bcrypt.MinCost,
		}, slog.Default()),
		banking: bankingsvc.New(uow, bcrypt.MinCost, slog.Default()),
	}
}

func (f *fixture) open(t *testing.T, email, contact, balance string) string {
	t.Helper()
	initial, err := money.Parse(balance)
	require.NoError(t, err)
	a, err := f.accounts.Create(context.Background(), accountsvc.CreateParams{
		Name:           "Holder " + contact,
		DOB:            "1990-01-01",
		City:           "Cairo",
		Password:       "Passw0rd!",
		InitialBalance: initial,
		Contact:        contact,
		Email:          email,
		Address:        "1 Test St",
	})
	require.NoError(t, err)
	return a.Number
}

func (f *fixture) balance(t *testing.T, number string) int64 {
	t.Helper()
	b, err := f.banking.Balance(context.Background(), number)
	require.NoError(t, err)
	return b.Amount()
}

func amt(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err)
	return m
}

// Mirrors the canonical scenario: open with 5000, credit 1500, debit 2000,
// then fail a 10000 debit without touching state.
func TestCreditDebitScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")

	require.NoError(t, f.banking.Credit(ctx, number, amt(t, "1500")))
	assert.Equal(t, int64(650000), f.balance(t, number))
	entries, err := f.banking.History(ctx, number)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, account.TypeCredit, entries[0].Type)
	assert.Equal(t, int64(150000), entries[0].Amount.Amount())

	require.NoError(t, f.banking.Debit(ctx, number, amt(t, "2000")))
	assert.Equal(t, int64(450000), f.balance(t, number))
	entries, err = f.banking.History(ctx, number)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, account.TypeDebit, entries[1].Type)

	err = f.banking.Debit(ctx, number, amt(t, "10000"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(450000), f.balance(t, number))
	entries, err = f.banking.History(ctx, number)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCreditThenDebitRestoresBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")
	before := f.balance(t, number)

	require.NoError(t, f.banking.Credit(ctx, number, amt(t, "123.45")))
	require.NoError(t, f.banking.Debit(ctx, number, amt(t, "123.45")))

	assert.Equal(t, before, f.balance(t, number))
	entries, err := f.banking.History(ctx, number)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, account.TypeCredit, entries[0].Type)
	assert.Equal(t, account.TypeDebit, entries[1].Type)
}

func TestCredit_NonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")

	err := f.banking.Credit(ctx, number, money.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, int64(500000), f.balance(t, number))
}

// Concurrent debits must serialize their check-and-write: with 5000 in the
// account and twenty racing 1000 debits, exactly five may succeed and the
// balance must never go negative.
func TestDebit_ConcurrentOverdraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")
	debit := amt(t, "1000")

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.banking.Debit(ctx, number, debit)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientFunds):
			insufficient++
		default:
			t.Fatalf("unexpected debit error: %v", err)
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, insufficient)
	assert.Equal(t, int64(0), f.balance(t, number))

	// one ledger entry per successful debit, none for the failures
	entries, err := f.banking.History(ctx, number)
	require.NoError(t, err)
	assert.Len(t, entries, succeeded)
}

func TestDebit_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	err := f.banking.Debit(context.Background(), "0000000000", amt(t, "10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_ConservesTotalBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := f.open(t, "alice@example.com", "0123456789", "5000")
	dst := f.open(t, "bob@example.com", "0999999999", "3000")

	require.NoError(t, f.banking.Transfer(ctx, src, dst, amt(t, "1200")))

	assert.Equal(t, int64(380000), f.balance(t, src))
	assert.Equal(t, int64(420000), f.balance(t, dst))
	assert.Equal(t, int64(800000), f.balance(t, src)+f.balance(t, dst))

	// exactly one Transfer entry, attributed to the source
	srcEntries, err := f.banking.History(ctx, src)
	require.NoError(t, err)
	require.Len(t, srcEntries, 1)
	assert.Equal(t, account.TypeTransfer, srcEntries[0].Type)
	assert.Equal(t, src, srcEntries[0].AccountNumber)

	dstEntries, err := f.banking.History(ctx, dst)
	require.NoError(t, err)
	assert.Empty(t, dstEntries)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := f.open(t, "alice@example.com", "0123456789", "2000")
	dst := f.open(t, "bob@example.com", "0999999999", "3000")

	err := f.banking.Transfer(ctx, src, dst, amt(t, "2500"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// nothing moved, nothing logged
	assert.Equal(t, int64(200000), f.balance(t, src))
	assert.Equal(t, int64(300000), f.balance(t, dst))
	entries, err := f.banking.History(ctx, src)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTransfer_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := f.open(t, "alice@example.com", "0123456789", "5000")

	err := f.banking.Transfer(ctx, src, "0000000000", amt(t, "100"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// the source must not be debited when the target does not exist
	assert.Equal(t, int64(500000), f.balance(t, src))
	entries, err := f.banking.History(ctx, src)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTransfer_SameAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")

	err := f.banking.Transfer(ctx, number, number, amt(t, "100"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, int64(500000), f.balance(t, number))
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")

	require.NoError(t, f.banking.ChangePassword(ctx, number, "N3wPassw0rd!"))

	_, err := f.accounts.Authenticate(ctx, number, "Passw0rd!")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	a, err := f.accounts.Authenticate(ctx, number, "N3wPassw0rd!")
	require.NoError(t, err)
	assert.Equal(t, number, a.Number)
}

func TestChangePassword_InvalidFormat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	number := f.open(t, "alice@example.com", "0123456789", "5000")

	err := f.banking.ChangePassword(ctx, number, "weak")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// old password still works
	_, err = f.accounts.Authenticate(ctx, number, "Passw0rd!")
	assert.NoError(t, err)
}

func TestHistory_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	_, err := f.banking.History(context.Background(), "0000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

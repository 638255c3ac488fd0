package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TreasuryReader defines read operations for the cash singleton and its subledger.
type TreasuryReader interface {
	GetTreasury(ctx context.Context) (*domain.Treasury, error)

	ListTreasuryTransactions(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.TreasuryTransaction, error)

	// LastBalanceBefore returns the balanceAfter of the newest subledger row created before the given
	// time. found is false when there is no such row.
	LastBalanceBefore(ctx context.Context, before time.Time) (balance decimal.Decimal, found bool, err error)
}

// TreasuryWriter mutates the treasury inside a caller-owned transaction.
type TreasuryWriter interface {
	// LockTreasury selects the singleton row FOR UPDATE.
	LockTreasury(ctx context.Context, tx pgx.Tx) (*domain.Treasury, error)

	UpdateTreasuryBalance(ctx context.Context, tx pgx.Tx, newBalance decimal.Decimal, userID string, now time.Time) error

	SetTreasuryOpening(ctx context.Context, tx pgx.Tx, opening, current decimal.Decimal, userID string, now time.Time) error

	InsertTreasuryTransaction(ctx context.Context, tx pgx.Tx, txn domain.TreasuryTransaction) error
}

// TreasuryRepositoryFacade combines all treasury operations.
type TreasuryRepositoryFacade interface {
	TreasuryReader
	TreasuryWriter
}

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// BankAccountWriter mutates bank accounts inside a caller-owned transaction.
type BankAccountWriter interface {
	SaveBankAccount(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error

	// LockBankAccount selects the account FOR UPDATE; ErrNotFound when absent.
	LockBankAccount(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error)

	UpdateBankBalance(ctx context.Context, tx pgx.Tx, bankAccountID string, newBalance decimal.Decimal, userID string, now time.Time) error
}

// BankAccountRepositoryFacade combines all bank account operations.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}

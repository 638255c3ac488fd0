package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// TreasurySvc covers the cash singleton.
type TreasurySvc interface {
	GetTreasury(ctx context.Context) (*domain.Treasury, error)

	// SetOpeningBalance succeeds once; later calls fail with ErrConflict and change nothing.
	SetOpeningBalance(ctx context.Context, amount decimal.Decimal, userID string) (*domain.Treasury, error)

	ListTreasuryTransactions(ctx context.Context, params dto.DateRangeParams) ([]domain.TreasuryTransaction, error)
}

// BankAccountSvc covers bank account balances.
type BankAccountSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)
	GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// TreasurySvcFacade combines cash and bank balance operations.
type TreasurySvcFacade interface {
	TreasurySvc
	BankAccountSvc
}

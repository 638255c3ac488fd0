package services

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

// ReportingSvcFacade is the read-only statement/report engine.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, asOf time.Time, lang string) ([]domain.TrialBalanceRow, error)
	GeneralJournal(ctx context.Context, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error)
	IncomeStatement(ctx context.Context, from, to time.Time, lang string) (*domain.IncomeStatement, error)
	TreasuryReport(ctx context.Context, from, to time.Time) (*domain.TreasuryReport, error)
	BankReport(ctx context.Context, bankAccountID string, from, to time.Time) (*domain.BankReport, error)
	AccountStatement(ctx context.Context, accountCode string, from, to time.Time, lang string) (*domain.AccountStatement, error)
}

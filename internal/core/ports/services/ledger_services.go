package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over the journal.
type LedgerReaderSvc interface {
	// AccountBalance is the sum of debits minus the sum of credits for the account code.
	AccountBalance(ctx context.Context, accountCode string) (decimal.Decimal, error)

	// AccountEntries lists entries touching the account, newest first.
	AccountEntries(ctx context.Context, accountCode string, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriterSvc defines standalone postings.
type LedgerWriterSvc interface {
	Post(ctx context.Context, req dto.PostEntryRequest, userID string) (*domain.LedgerEntry, error)
}

// LedgerSvcFacade combines all ledger operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the journal.
type LedgerReader interface {
	// SumAccount returns the total debited to and credited from an account code.
	SumAccount(ctx context.Context, account string) (debit decimal.Decimal, credit decimal.Decimal, err error)

	// NetBalanceBefore returns debit minus credit for entries created strictly before the given time.
	NetBalanceBefore(ctx context.Context, account string, before time.Time) (decimal.Decimal, error)

	// ListEntriesByAccount returns entries touching the account on either side, newest first,
	// using token-based pagination.
	ListEntriesByAccount(ctx context.Context, account string, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// ListEntries returns the whole journal, newest first, using token-based pagination.
	ListEntries(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// ListEntriesByAccountAsc returns every entry touching the account in [from, to], oldest first.
	ListEntriesByAccountAsc(ctx context.Context, account string, from, to time.Time) ([]domain.LedgerEntry, error)
}

// LedgerWriter appends to the journal. There is deliberately no update or delete.
type LedgerWriter interface {
	InsertEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines journal reads and writes.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

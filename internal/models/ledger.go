package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of ledger_entries. Account columns hold the opaque storage codes.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	SourceType    string          `db:"source_type"`
	SourceID      string          `db:"source_id"`
	DebitAccount  string          `db:"debit_account"`
	CreditAccount string          `db:"credit_account"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType names the business event that produced a ledger entry.
type SourceType string

const (
	SourceVoucher        SourceType = "VOUCHER"
	SourceInvoice        SourceType = "INVOICE"
	SourceTrip           SourceType = "TRIP"
	SourceAdditionalFee  SourceType = "ADDITIONAL_FEE"
	SourcePayroll        SourceType = "PAYROLL"
	SourceOpeningBalance SourceType = "OPENING_BALANCE"
)

// Valid reports whether s is a known source type.
func (s SourceType) Valid() bool {
	switch s {
	case SourceVoucher, SourceInvoice, SourceTrip, SourceAdditionalFee, SourcePayroll, SourceOpeningBalance:
		return true
	}
	return false
}

// LedgerEntry is one immutable double-entry posting.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	SourceType    SourceType      `json:"sourceType"`
	SourceID      string          `json:"sourceID"`
	DebitAccount  AccountRef      `json:"debitAccount"`
	CreditAccount AccountRef      `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// EffectOn returns the signed effect of the entry on account: +amount when debited,
// -amount when credited, zero when the entry does not touch it.
func (e LedgerEntry) EffectOn(account AccountRef) decimal.Decimal {
	switch account {
	case e.DebitAccount:
		return e.Amount
	case e.CreditAccount:
		return e.Amount.Neg()
	}
	return decimal.Zero
}

package dto

import (
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostEntryRequest posts a single double-entry line to the journal.
type PostEntryRequest struct {
	SourceType    domain.SourceType `json:"sourceType" binding:"required,oneof=VOUCHER INVOICE TRIP ADDITIONAL_FEE PAYROLL"`
	SourceID      string            `json:"sourceID" binding:"required"`
	DebitAccount  string            `json:"debitAccount" binding:"required"`
	CreditAccount string            `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal   `json:"amount" binding:"dgt0"`
	CurrencyCode  string            `json:"currencyCode"`
	ExchangeRate  *decimal.Decimal  `json:"exchangeRate"`
	Description   string            `json:"description"`
}

// ListEntriesParams defines query parameters for token-paginated journal listing.
type ListEntriesParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit     int        `form:"limit,default=50"`
	NextToken *string    `form:"nextToken"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string            `json:"entryID"`
	SourceType    domain.SourceType `json:"sourceType"`
	SourceID      string            `json:"sourceID"`
	DebitAccount  string            `json:"debitAccount"`
	CreditAccount string            `json:"creditAccount"`
	Amount        decimal.Decimal   `json:"amount"`
	CurrencyCode  string            `json:"currencyCode"`
	ExchangeRate  decimal.Decimal   `json:"exchangeRate"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// ListEntriesResponse is a page of journal entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	Account string          `json:"account"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO, flattening account refs to codes.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		SourceType:    e.SourceType,
		SourceID:      e.SourceID,
		DebitAccount:  e.DebitAccount.String(),
		CreditAccount: e.CreditAccount.String(),
		Amount:        e.Amount,
		CurrencyCode:  e.CurrencyCode,
		ExchangeRate:  e.ExchangeRate,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

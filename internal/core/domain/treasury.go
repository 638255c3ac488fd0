package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreasuryMovement is the direction of a cash subledger row.
type TreasuryMovement string

const (
	MovementIn  TreasuryMovement = "IN"
	MovementOut TreasuryMovement = "OUT"
)

// Treasury is the organisation-wide cash singleton.
type Treasury struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	OpeningSetAt   *time.Time      `json:"openingSetAt,omitempty"`
	OpeningSetBy   *string         `json:"openingSetBy,omitempty"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// OpeningLocked reports whether the opening balance has already been set.
func (t Treasury) OpeningLocked() bool {
	return t.OpeningSetAt != nil
}

// TreasuryTransaction is an append-only cash subledger row. BalanceAfter is the
// treasury balance immediately after this row was written.
type TreasuryTransaction struct {
	TransactionID string           `json:"transactionID"`
	Date          time.Time        `json:"date"`
	Type          TreasuryMovement `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	Note          string           `json:"note"`
	BalanceAfter  decimal.Decimal  `json:"balanceAfter"`
	VoucherID     *string          `json:"voucherID,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
}

// BankAccount holds a cached running balance for one bank account.
type BankAccount struct {
	BankAccountID  string          `json:"bankAccountID"`
	BankID         string          `json:"bankID"`
	AccountNo      string          `json:"accountNo"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}

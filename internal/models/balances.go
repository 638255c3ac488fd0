package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of bank_accounts.
type BankAccount struct {
	BankAccountID  string          `db:"bank_account_id"`
	BankID         string          `db:"bank_id"`
	AccountNo      string          `db:"account_no"`
	Name           string          `db:"name"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}

// TreasuryTransaction is a row of treasury_transactions.
type TreasuryTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Movement        string          `db:"movement"`
	Amount          decimal.Decimal `db:"amount"`
	Note            string          `db:"note"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	VoucherID       *string         `db:"voucher_id"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a row of vouchers with the posted effect flattened into posted_* columns.
type Voucher struct {
	VoucherID           string          `db:"voucher_id"`
	Code                string          `db:"code"`
	VoucherType         string          `db:"voucher_type"`
	PartyType           string          `db:"party_type"`
	PartyID             *string         `db:"party_id"`
	PartyName           string          `db:"party_name"`
	PaymentMethod       string          `db:"payment_method"`
	BankAccountID       *string         `db:"bank_account_id"`
	Amount              decimal.Decimal `db:"amount"`
	CategoryID          *string         `db:"category_id"`
	VoucherDate         time.Time       `db:"voucher_date"`
	Note                string          `db:"note"`
	PayrollRunID        *string         `db:"payroll_run_id"`
	PostedAmount        decimal.Decimal `db:"posted_amount"`
	PostedMethod        string          `db:"posted_method"`
	PostedBankAccountID *string         `db:"posted_bank_account_id"`
	AuditFields
}

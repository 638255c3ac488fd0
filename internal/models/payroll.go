package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRun is a row of payroll_runs.
type PayrollRun struct {
	RunID         string          `db:"run_id"`
	Month         string          `db:"month"`
	Status        string          `db:"status"`
	TotalNet      decimal.Decimal `db:"total_net"`
	PaymentMethod *string         `db:"payment_method"`
	BankAccountID *string         `db:"bank_account_id"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	ApprovedBy    *string         `db:"approved_by"`
	AuditFields
}

// PayrollItem is a row of payroll_items.
type PayrollItem struct {
	ItemID       string          `db:"item_id"`
	RunID        string          `db:"run_id"`
	EmployeeID   string          `db:"employee_id"`
	EmployeeName string          `db:"employee_name"`
	Base         decimal.Decimal `db:"base"`
	Allowances   decimal.Decimal `db:"allowances"`
	Deductions   decimal.Decimal `db:"deductions"`
	Net          decimal.Decimal `db:"net"`
	VoucherID    *string         `db:"voucher_id"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the state of a payroll run.
type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "DRAFT"
	PayrollApproved PayrollStatus = "APPROVED"
)

// PayrollRun is a monthly batch of employee pay.
type PayrollRun struct {
	RunID         string          `json:"runID"`
	Month         string          `json:"month"` // YYYY-MM
	Status        PayrollStatus   `json:"status"`
	TotalNet      decimal.Decimal `json:"totalNet"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	ApprovedBy    *string         `json:"approvedBy,omitempty"`
	Items         []PayrollItem   `json:"items,omitempty"`
	AuditFields
}

// PayrollItem is one employee's line in a run.
type PayrollItem struct {
	ItemID       string          `json:"itemID"`
	RunID        string          `json:"runID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	Base         decimal.Decimal `json:"base"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`
	VoucherID    *string         `json:"voucherID,omitempty"`
}

// ComputeNet returns base + allowances - deductions.
func ComputeNet(base, allowances, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Sub(deductions)
}

// TotalNet sums the net amounts of items.
func TotalNet(items []PayrollItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Net)
	}
	return total
}

// Employee is the master-data view the payroll engine reads.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Allowances decimal.Decimal `json:"allowances"`
	IsActive   bool            `json:"isActive"`
}

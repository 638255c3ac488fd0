package dto

import (
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayrollRunRequest opens a DRAFT run for a month, generated from active employees.
type CreatePayrollRunRequest struct {
	Month string `json:"month" binding:"required,datetime=2006-01"`
}

// PayrollItemRequest is one employee line when replacing a draft run's items.
type PayrollItemRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Base       decimal.Decimal `json:"base" binding:"dgte0"`
	Allowances decimal.Decimal `json:"allowances" binding:"dgte0"`
	Deductions decimal.Decimal `json:"deductions" binding:"dgte0"`
}

// ReplacePayrollItemsRequest replaces all items of a DRAFT run.
type ReplacePayrollItemsRequest struct {
	Items []PayrollItemRequest `json:"items" binding:"required,dive"`
}

// ApprovePayrollRequest selects how the run is paid. Method defaults to CASH.
type ApprovePayrollRequest struct {
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH BANK_TRANSFER"`
	BankAccountID *string               `json:"bankAccountID"`
}

// ListPayrollRunsParams defines query parameters for listing runs.
type ListPayrollRunsParams struct {
	Limit  int `form:"limit,default=12"`
	Offset int `form:"offset,default=0"`
}

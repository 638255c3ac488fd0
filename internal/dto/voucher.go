package dto

import (
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data needed to create a receipt or payment voucher.
type CreateVoucherRequest struct {
	Type          domain.VoucherType   `json:"type" binding:"required,oneof=RECEIPT PAYMENT"`
	PartyType     domain.PartyType     `json:"partyType" binding:"required,oneof=CUSTOMER EMPLOYEE AGENT OTHER"`
	PartyID       *string              `json:"partyID"`
	PartyName     string               `json:"partyName"`
	Method        domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK_TRANSFER"`
	BankAccountID *string              `json:"bankAccountID"`
	Amount        decimal.Decimal      `json:"amount" binding:"dgt0"`
	CategoryID    *string              `json:"categoryID"`
	Date          time.Time            `json:"date"` // Optional, defaults to now
	Note          string               `json:"note"`
}

// UpdateVoucherRequest holds the editable voucher fields.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Changing amount, method or bank account does NOT re-post balances or the ledger.
type UpdateVoucherRequest struct {
	PartyName     *string               `json:"partyName"`
	Method        *domain.PaymentMethod `json:"method" binding:"omitempty,oneof=CASH BANK_TRANSFER"`
	BankAccountID *string               `json:"bankAccountID"`
	Amount        *decimal.Decimal      `json:"amount"`
	CategoryID    *string               `json:"categoryID"`
	Date          *time.Time            `json:"date"`
	Note          *string               `json:"note"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Type          string     `form:"type" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	Method        string     `form:"method" binding:"omitempty,oneof=CASH BANK_TRANSFER"`
	BankAccountID string     `form:"bankAccountID"`
	From          *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To            *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit         int        `form:"limit,default=20"`
	Offset        int        `form:"offset,default=0"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListVouchersParams) ToFilter() domain.VoucherFilter {
	f := domain.VoucherFilter{From: p.From, To: p.To, Limit: p.Limit, Offset: p.Offset}
	if p.Type != "" {
		t := domain.VoucherType(p.Type)
		f.Type = &t
	}
	if p.Method != "" {
		m := domain.PaymentMethod(p.Method)
		f.Method = &m
	}
	if p.BankAccountID != "" {
		id := p.BankAccountID
		f.BankAccountID = &id
	}
	return f
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string               `json:"voucherID"`
	Code          string               `json:"code"`
	Type          domain.VoucherType   `json:"type"`
	PartyType     domain.PartyType     `json:"partyType"`
	PartyID       *string              `json:"partyID,omitempty"`
	PartyName     string               `json:"partyName"`
	Method        domain.PaymentMethod `json:"method"`
	BankAccountID *string              `json:"bankAccountID,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	CategoryID    *string              `json:"categoryID,omitempty"`
	Date          time.Time            `json:"date"`
	Note          string               `json:"note"`
	PayrollRunID  *string              `json:"payrollRunID,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		Code:          v.Code,
		Type:          v.Type,
		PartyType:     v.PartyType,
		PartyID:       v.PartyID,
		PartyName:     v.PartyName,
		Method:        v.Method,
		BankAccountID: v.BankAccountID,
		Amount:        v.Amount,
		CategoryID:    v.CategoryID,
		Date:          v.Date,
		Note:          v.Note,
		PayrollRunID:  v.PayrollRunID,
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
		LastUpdatedAt: v.LastUpdatedAt,
		LastUpdatedBy: v.LastUpdatedBy,
	}
}

// ToListVoucherResponse converts a slice of domain.Voucher to a slice of VoucherResponse DTOs
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToVoucherResponse(&vouchers[i])
	}
	return res
}

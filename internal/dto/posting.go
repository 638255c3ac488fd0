package dto

import (
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostInvoiceRequest journals a customs invoice against a customer.
type PostInvoiceRequest struct {
	InvoiceID   string             `json:"invoiceID" binding:"required"`
	InvoiceType domain.InvoiceType `json:"invoiceType" binding:"required,oneof=EXPORT IMPORT TRANSIT FREE_ZONE"`
	CustomerID  string             `json:"customerID" binding:"required"`
	Amount      decimal.Decimal    `json:"amount" binding:"dgt0"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
}

// PostTripRequest journals a shipping trip cost owed to an agent.
type PostTripRequest struct {
	TripID      string          `json:"tripID" binding:"required"`
	AgentID     string          `json:"agentID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"dgt0"`
	Description string          `json:"description"`
}

// PostAdditionalFeeRequest journals an agent fee, re-billed to a customer when CustomerID is set.
type PostAdditionalFeeRequest struct {
	FeeID       string          `json:"feeID" binding:"required"`
	AgentID     string          `json:"agentID" binding:"required"`
	CustomerID  *string         `json:"customerID"`
	Amount      decimal.Decimal `json:"amount" binding:"dgt0"`
	Description string          `json:"description"`
}

// InvoicePostingResponse returns the minted invoice code with the posted entry.
type InvoicePostingResponse struct {
	InvoiceCode string              `json:"invoiceCode"`
	Entry       LedgerEntryResponse `json:"entry"`
}

package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

// PostingSvcFacade journals invoices, trips and agent fees.
type PostingSvcFacade interface {
	// PostInvoice mints the invoice code and posts the receivable. It returns the code and entry.
	PostInvoice(ctx context.Context, req dto.PostInvoiceRequest, userID string) (string, *domain.LedgerEntry, error)
	PostTrip(ctx context.Context, req dto.PostTripRequest, userID string) (*domain.LedgerEntry, error)
	PostAdditionalFee(ctx context.Context, req dto.PostAdditionalFeeRequest, userID string) (*domain.LedgerEntry, error)
}

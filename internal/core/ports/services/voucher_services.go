package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

// VoucherReaderSvc defines read operations for vouchers.
type VoucherReaderSvc interface {
	GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) ([]domain.Voucher, error)
}

// VoucherWriterSvc defines the money-moving voucher operations.
type VoucherWriterSvc interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error)
	RemoveVoucher(ctx context.Context, voucherID string, userID string) error
}

// VoucherSvcFacade combines all voucher operations.
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}

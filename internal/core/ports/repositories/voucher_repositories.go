package repositories

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// VoucherReader defines read operations for vouchers.
type VoucherReader interface {
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for vouchers.
type VoucherWriter interface {
	SaveVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error

	// LockVoucher selects the voucher FOR UPDATE; ErrNotFound when absent.
	LockVoucher(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.Voucher, error)

	// UpdateVoucher rewrites the editable fields. The posted effect is never touched.
	UpdateVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error

	DeleteVoucher(ctx context.Context, tx pgx.Tx, voucherID string) error
}

// VoucherRepositoryFacade combines all voucher operations.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

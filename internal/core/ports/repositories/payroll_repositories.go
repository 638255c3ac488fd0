package repositories

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PayrollReader defines read operations for payroll runs.
type PayrollReader interface {
	// FindPayrollRunByID returns the run with its items.
	FindPayrollRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// ListPayrollRuns returns runs newest month first, without items.
	ListPayrollRuns(ctx context.Context, limit, offset int) ([]domain.PayrollRun, error)
}

// PayrollWriter defines write operations for payroll runs.
type PayrollWriter interface {
	// SavePayrollRun inserts the run and its items. A duplicate month yields ErrDuplicate.
	SavePayrollRun(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error

	// LockPayrollRun selects the run FOR UPDATE and loads its items.
	LockPayrollRun(ctx context.Context, tx pgx.Tx, runID string) (*domain.PayrollRun, error)

	// ReplacePayrollItems deletes the run's items, inserts the given ones and stores the new total.
	ReplacePayrollItems(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error

	// UpdatePayrollRunStatus stores status, payment method, bank account and approval stamps.
	UpdatePayrollRunStatus(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error

	LinkPayrollItemVoucher(ctx context.Context, tx pgx.Tx, itemID string, voucherID *string) error
}

// PayrollRepositoryFacade combines all payroll operations.
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
)

// ReportingRepository runs the journal aggregations behind the financial reports.
type ReportingRepository interface {
	// GetAccountTotals groups the journal by account code over entries created in [from, to].
	// A nil from means since the beginning.
	GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountTotals, error)
}

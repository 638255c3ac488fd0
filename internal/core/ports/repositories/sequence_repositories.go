package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SequenceRepository backs the document code generator.
type SequenceRepository interface {
	// CountCodes returns how many codes were issued for the type in the year.
	CountCodes(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int) (int, error)

	// ReserveCode records code as issued. reserved is false when the code already exists.
	ReserveCode(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int, code string, now time.Time) (reserved bool, err error)
}

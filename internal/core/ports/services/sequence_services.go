package services

import (
	"context"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CodeGenerator mints human-readable document codes inside the caller's transaction.
type CodeGenerator interface {
	// NextCode returns a code of the form <PREFIX>-<YY>-<NNNN> unique within (docType, year).
	NextCode(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, date time.Time) (string, error)
}

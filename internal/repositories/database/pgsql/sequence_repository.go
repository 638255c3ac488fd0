package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository keeps the registry of issued document codes.
type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) CountCodes(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int) (int, error) {
	var n int
	err := r.db(tx).QueryRow(ctx, `
		SELECT COUNT(*) FROM document_codes WHERE document_type = $1 AND code_year = $2;`,
		string(docType), year).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s codes for %d: %w", docType, year, err)
	}
	return n, nil
}

// ReserveCode inserts the code unless another transaction already holds it.
func (r *PgxSequenceRepository) ReserveCode(ctx context.Context, tx pgx.Tx, docType domain.DocumentType, year int, code string, now time.Time) (bool, error) {
	tag, err := r.db(tx).Exec(ctx, `
		INSERT INTO document_codes (code, document_type, code_year, issued_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING;`,
		code, string(docType), year, now)
	if err != nil {
		return false, fmt.Errorf("failed to reserve code %s: %w", code, err)
	}
	return tag.RowsAffected() == 1, nil
}

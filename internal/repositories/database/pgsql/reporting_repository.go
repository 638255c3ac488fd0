package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAccountTotals unfolds each entry into its debit and credit leg and groups by account.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountTotals, error) {
	query := `
		WITH legs AS (
			SELECT debit_account AS account, amount AS debit, 0::numeric AS credit
			FROM ledger_entries
			WHERE created_at <= $1 AND ($2::timestamptz IS NULL OR created_at >= $2)
			UNION ALL
			SELECT credit_account AS account, 0::numeric AS debit, amount AS credit
			FROM ledger_entries
			WHERE created_at <= $1 AND ($2::timestamptz IS NULL OR created_at >= $2)
		)
		SELECT account, SUM(debit) AS total_debit, SUM(credit) AS total_credit
		FROM legs
		GROUP BY account
		ORDER BY account;
	`

	rows, err := r.Pool.Query(ctx, query, to, from)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountTotals{}
	for rows.Next() {
		var row domain.AccountTotals
		if err := rows.Scan(&row.Account, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}

	return result, nil
}

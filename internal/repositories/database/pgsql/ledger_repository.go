package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/mapping"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `entry_id, source_type, source_id, debit_account, credit_account, amount,
	currency_code, exchange_rate, description, created_at, created_by`

// PgxLedgerRepository persists the append-only journal.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// InsertEntry appends one entry inside the caller's transaction.
func (r *PgxLedgerRepository) InsertEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := tx.Exec(ctx, query,
		m.EntryID, m.SourceType, m.SourceID, m.DebitAccount, m.CreditAccount, m.Amount,
		m.CurrencyCode, m.ExchangeRate, m.Description, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ledger entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// SumAccount totals both sides of an account.
func (r *PgxLedgerRepository) SumAccount(ctx context.Context, account string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN debit_account = $1 THEN amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN credit_account = $1 THEN amount ELSE 0 END), 0) AS total_credit
		FROM ledger_entries
		WHERE debit_account = $1 OR credit_account = $1;
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, account).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum account %s: %w", account, err)
	}
	return debit, credit, nil
}

// NetBalanceBefore returns debit minus credit for entries created before the given time.
func (r *PgxLedgerRepository) NetBalanceBefore(ctx context.Context, account string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN debit_account = $1 THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE (debit_account = $1 OR credit_account = $1) AND created_at < $2;
	`
	var net decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, account, before).Scan(&net); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance of %s before %s: %w", account, before, err)
	}
	return net, nil
}

// ListEntriesByAccount returns entries touching account, newest first.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, account string, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	return r.listPage(ctx, []string{"(debit_account = $1 OR credit_account = $1)"}, []any{account}, from, to, limit, nextToken)
}

// ListEntries returns the whole journal, newest first.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	return r.listPage(ctx, nil, nil, from, to, limit, nextToken)
}

// listPage runs a keyset-paginated query ordered by (created_at, entry_id) descending.
func (r *PgxLedgerRepository) listPage(ctx context.Context, conds []string, args []any, from, to *time.Time, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, entryID, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt, entryID)
		conds = append(conds, fmt.Sprintf("(created_at, entry_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	// Fetch one extra row to learn whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, entry_id DESC LIMIT $%d", len(args))

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeEntryCursor(last.CreatedAt, last.EntryID)
		next = &token
	}
	return entries, next, nil
}

// ListEntriesByAccountAsc returns every entry touching account in [from, to], oldest first.
func (r *PgxLedgerRepository) ListEntriesByAccountAsc(ctx context.Context, account string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE (debit_account = $1 OR credit_account = $1) AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC, entry_id ASC;`
	return r.queryEntries(ctx, query, account, from, to)
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID, &m.SourceType, &m.SourceID, &m.DebitAccount, &m.CreditAccount, &m.Amount,
			&m.CurrencyCode, &m.ExchangeRate, &m.Description, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}

	entries, err := mapping.ToDomainLedgerEntrySlice(ms)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	return entries, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const treasuryColumns = `opening_balance, current_balance, opening_set_at, opening_set_by, last_updated_at, last_updated_by`

// PgxTreasuryRepository persists the cash singleton (id = 1) and its subledger.
type PgxTreasuryRepository struct {
	BaseRepository
}

func newPgxTreasuryRepository(pool *pgxpool.Pool) portsrepo.TreasuryRepositoryFacade {
	return &PgxTreasuryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TreasuryRepositoryFacade = (*PgxTreasuryRepository)(nil)

func scanTreasury(row pgx.Row) (*domain.Treasury, error) {
	var t domain.Treasury
	if err := row.Scan(&t.OpeningBalance, &t.CurrentBalance, &t.OpeningSetAt, &t.OpeningSetBy, &t.LastUpdatedAt, &t.LastUpdatedBy); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTreasury reads the singleton without locking it.
func (r *PgxTreasuryRepository) GetTreasury(ctx context.Context) (*domain.Treasury, error) {
	t, err := scanTreasury(r.Pool.QueryRow(ctx, `SELECT `+treasuryColumns+` FROM treasury WHERE id = 1;`))
	if err != nil {
		return nil, notFoundOr(err, "treasury row missing")
	}
	return t, nil
}

// LockTreasury selects the singleton FOR UPDATE.
func (r *PgxTreasuryRepository) LockTreasury(ctx context.Context, tx pgx.Tx) (*domain.Treasury, error) {
	t, err := scanTreasury(tx.QueryRow(ctx, `SELECT `+treasuryColumns+` FROM treasury WHERE id = 1 FOR UPDATE;`))
	if err != nil {
		return nil, notFoundOr(err, "treasury row missing")
	}
	return t, nil
}

func (r *PgxTreasuryRepository) UpdateTreasuryBalance(ctx context.Context, tx pgx.Tx, newBalance decimal.Decimal, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE treasury SET current_balance = $1, last_updated_at = $2, last_updated_by = $3
		WHERE id = 1;`, newBalance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update treasury balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: treasury row missing", apperrors.ErrNotFound)
	}
	return nil
}

// SetTreasuryOpening stores the opening balance and stamps it. The opening_set_at guard makes a
// second write a no-op at the row level, which surfaces as ErrConflict.
func (r *PgxTreasuryRepository) SetTreasuryOpening(ctx context.Context, tx pgx.Tx, opening, current decimal.Decimal, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE treasury
		SET opening_balance = $1, current_balance = $2, opening_set_at = $3, opening_set_by = $4,
		    last_updated_at = $3, last_updated_by = $4
		WHERE id = 1 AND opening_set_at IS NULL;`, opening, current, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set treasury opening balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: treasury opening balance already set", apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxTreasuryRepository) InsertTreasuryTransaction(ctx context.Context, tx pgx.Tx, txn domain.TreasuryTransaction) error {
	m := mapping.ToModelTreasuryTransaction(txn)
	_, err := tx.Exec(ctx, `
		INSERT INTO treasury_transactions
			(transaction_id, transaction_date, movement, amount, note, balance_after, voucher_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.TransactionID, m.TransactionDate, m.Movement, m.Amount, m.Note, m.BalanceAfter, m.VoucherID, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert treasury transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// ListTreasuryTransactions returns subledger rows in creation order.
func (r *PgxTreasuryRepository) ListTreasuryTransactions(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.TreasuryTransaction, error) {
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT transaction_id, transaction_date, movement, amount, note, balance_after, voucher_id, created_at, created_by
		FROM treasury_transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at ASC, transaction_id ASC"
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query treasury transactions: %w", err)
	}
	defer rows.Close()

	result := []domain.TreasuryTransaction{}
	for rows.Next() {
		var m models.TreasuryTransaction
		if err := rows.Scan(&m.TransactionID, &m.TransactionDate, &m.Movement, &m.Amount, &m.Note,
			&m.BalanceAfter, &m.VoucherID, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan treasury transaction: %w", err)
		}
		result = append(result, mapping.ToDomainTreasuryTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treasury transactions: %w", err)
	}
	return result, nil
}

// LastBalanceBefore returns the balance_after of the newest row created before the given time.
func (r *PgxTreasuryRepository) LastBalanceBefore(ctx context.Context, before time.Time) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT balance_after FROM treasury_transactions
		WHERE created_at < $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT 1;`, before).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to read treasury balance before %s: %w", before, err)
	}
	return balance, true, nil
}

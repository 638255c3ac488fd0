package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const payrollRunColumns = `run_id, month, status, total_net, payment_method, bank_account_id, approved_at, approved_by,
	created_at, created_by, last_updated_at, last_updated_by`

const payrollItemColumns = `item_id, run_id, employee_id, employee_name, base, allowances, deductions, net, voucher_id`

// PgxPayrollRepository persists payroll runs and their items.
type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

func scanPayrollRun(row pgx.Row) (domain.PayrollRun, error) {
	var m models.PayrollRun
	err := row.Scan(&m.RunID, &m.Month, &m.Status, &m.TotalNet, &m.PaymentMethod, &m.BankAccountID,
		&m.ApprovedAt, &m.ApprovedBy, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainPayrollRun(m), err
}

// SavePayrollRun inserts the run and its items in one batch.
func (r *PgxPayrollRepository) SavePayrollRun(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	m := mapping.ToModelPayrollRun(run)
	_, err := tx.Exec(ctx, `INSERT INTO payroll_runs (`+payrollRunColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.RunID, m.Month, m.Status, m.TotalNet, m.PaymentMethod, m.BankAccountID, m.ApprovedAt, m.ApprovedBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payroll run for month %s already exists", apperrors.ErrDuplicate, m.Month)
		}
		return fmt.Errorf("failed to insert payroll run %s: %w", m.RunID, err)
	}
	return r.insertItems(ctx, tx, run.Items)
}

func (r *PgxPayrollRepository) insertItems(ctx context.Context, tx pgx.Tx, items []domain.PayrollItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `INSERT INTO payroll_items (` + payrollItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	for _, it := range items {
		m := mapping.ToModelPayrollItem(it)
		batch.Queue(query, m.ItemID, m.RunID, m.EmployeeID, m.EmployeeName, m.Base, m.Allowances, m.Deductions, m.Net, m.VoucherID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee listed twice in payroll run", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert payroll items: %w", err)
	}
	return nil
}

func (r *PgxPayrollRepository) loadItems(ctx context.Context, q querier, runID string) ([]domain.PayrollItem, error) {
	rows, err := q.Query(ctx, `SELECT `+payrollItemColumns+` FROM payroll_items WHERE run_id = $1 ORDER BY employee_name ASC, item_id ASC;`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll items of run %s: %w", runID, err)
	}
	defer rows.Close()

	items := []domain.PayrollItem{}
	for rows.Next() {
		var m models.PayrollItem
		if err := rows.Scan(&m.ItemID, &m.RunID, &m.EmployeeID, &m.EmployeeName, &m.Base, &m.Allowances,
			&m.Deductions, &m.Net, &m.VoucherID); err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, mapping.ToDomainPayrollItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll items: %w", err)
	}
	return items, nil
}

func (r *PgxPayrollRepository) FindPayrollRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	run, err := scanPayrollRun(r.Pool.QueryRow(ctx, `SELECT `+payrollRunColumns+` FROM payroll_runs WHERE run_id = $1;`, runID))
	if err != nil {
		return nil, notFoundOr(err, "payroll run %s", runID)
	}
	if run.Items, err = r.loadItems(ctx, r.Pool, runID); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *PgxPayrollRepository) ListPayrollRuns(ctx context.Context, limit, offset int) ([]domain.PayrollRun, error) {
	if limit <= 0 {
		limit = 24
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+payrollRunColumns+` FROM payroll_runs ORDER BY month DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll runs: %w", err)
	}
	defer rows.Close()

	result := []domain.PayrollRun{}
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		result = append(result, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll runs: %w", err)
	}
	return result, nil
}

func (r *PgxPayrollRepository) LockPayrollRun(ctx context.Context, tx pgx.Tx, runID string) (*domain.PayrollRun, error) {
	run, err := scanPayrollRun(tx.QueryRow(ctx, `SELECT `+payrollRunColumns+` FROM payroll_runs WHERE run_id = $1 FOR UPDATE;`, runID))
	if err != nil {
		return nil, notFoundOr(err, "payroll run %s", runID)
	}
	if run.Items, err = r.loadItems(ctx, tx, runID); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *PgxPayrollRepository) ReplacePayrollItems(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	if _, err := tx.Exec(ctx, `DELETE FROM payroll_items WHERE run_id = $1;`, run.RunID); err != nil {
		return fmt.Errorf("failed to clear payroll items of run %s: %w", run.RunID, err)
	}
	if err := r.insertItems(ctx, tx, run.Items); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		UPDATE payroll_runs SET total_net = $2, last_updated_at = $3, last_updated_by = $4
		WHERE run_id = $1;`, run.RunID, run.TotalNet, run.LastUpdatedAt, run.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update payroll run %s total: %w", run.RunID, err)
	}
	return nil
}

func (r *PgxPayrollRepository) UpdatePayrollRunStatus(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	m := mapping.ToModelPayrollRun(run)
	tag, err := tx.Exec(ctx, `
		UPDATE payroll_runs
		SET status = $2, payment_method = $3, bank_account_id = $4, approved_at = $5, approved_by = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE run_id = $1;`,
		m.RunID, m.Status, m.PaymentMethod, m.BankAccountID, m.ApprovedAt, m.ApprovedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll run %s status: %w", m.RunID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payroll run %s", apperrors.ErrNotFound, m.RunID)
	}
	return nil
}

func (r *PgxPayrollRepository) LinkPayrollItemVoucher(ctx context.Context, tx pgx.Tx, itemID string, voucherID *string) error {
	tag, err := tx.Exec(ctx, `UPDATE payroll_items SET voucher_id = $2 WHERE item_id = $1;`, itemID, voucherID)
	if err != nil {
		return fmt.Errorf("failed to link payroll item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payroll item %s", apperrors.ErrNotFound, itemID)
	}
	return nil
}

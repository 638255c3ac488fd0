package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/customs_clearance_ledger/internal/models"
	"github.com/SscSPs/customs_clearance_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const voucherColumns = `voucher_id, code, voucher_type, party_type, party_id, party_name, payment_method,
	bank_account_id, amount, category_id, voucher_date, note, payroll_run_id,
	posted_amount, posted_method, posted_bank_account_id,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxVoucherRepository persists receipt and payment vouchers.
type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

func scanVoucher(row pgx.Row) (domain.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID, &m.Code, &m.VoucherType, &m.PartyType, &m.PartyID, &m.PartyName, &m.PaymentMethod,
		&m.BankAccountID, &m.Amount, &m.CategoryID, &m.VoucherDate, &m.Note, &m.PayrollRunID,
		&m.PostedAmount, &m.PostedMethod, &m.PostedBankAccountID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return mapping.ToDomainVoucher(m), err
}

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	_, err := tx.Exec(ctx, `INSERT INTO vouchers (`+voucherColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`,
		m.VoucherID, m.Code, m.VoucherType, m.PartyType, m.PartyID, m.PartyName, m.PaymentMethod,
		m.BankAccountID, m.Amount, m.CategoryID, m.VoucherDate, m.Note, m.PayrollRunID,
		m.PostedAmount, m.PostedMethod, m.PostedBankAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: voucher code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to insert voucher %s: %w", m.VoucherID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	v, err := scanVoucher(r.Pool.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE voucher_id = $1;`, voucherID))
	if err != nil {
		return nil, notFoundOr(err, "voucher %s", voucherID)
	}
	return &v, nil
}

func (r *PgxVoucherRepository) LockVoucher(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.Voucher, error) {
	v, err := scanVoucher(tx.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE voucher_id = $1 FOR UPDATE;`, voucherID))
	if err != nil {
		return nil, notFoundOr(err, "voucher %s", voucherID)
	}
	return &v, nil
}

// ListVouchers returns vouchers newest first, filtered on the voucher date.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, filter domain.VoucherFilter) ([]domain.Voucher, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Type != nil {
		add("voucher_type = $%d", string(*filter.Type))
	}
	if filter.Method != nil {
		add("payment_method = $%d", string(*filter.Method))
	}
	if filter.BankAccountID != nil {
		add("bank_account_id = $%d", *filter.BankAccountID)
	}
	if filter.From != nil {
		add("voucher_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("voucher_date <= $%d", *filter.To)
	}

	query := `SELECT ` + voucherColumns + ` FROM vouchers`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY voucher_date DESC, created_at DESC, voucher_id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	result := []domain.Voucher{}
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vouchers: %w", err)
	}
	return result, nil
}

// UpdateVoucher rewrites the editable fields. Code, type and the posted_* columns are left alone.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	tag, err := tx.Exec(ctx, `
		UPDATE vouchers
		SET party_type = $2, party_id = $3, party_name = $4, payment_method = $5, bank_account_id = $6,
		    amount = $7, category_id = $8, voucher_date = $9, note = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE voucher_id = $1;`,
		m.VoucherID, m.PartyType, m.PartyID, m.PartyName, m.PaymentMethod, m.BankAccountID,
		m.Amount, m.CategoryID, m.VoucherDate, m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher %s: %w", m.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, m.VoucherID)
	}
	return nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, tx pgx.Tx, voucherID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return nil
}

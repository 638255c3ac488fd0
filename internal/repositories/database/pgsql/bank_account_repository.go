package pgsql

import (
	"context"
	"fmt"
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

const bankAccountColumns = `bank_account_id, bank_id, account_no, name, opening_balance, current_balance,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxBankAccountRepository persists bank accounts and their cached balances.
type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

func scanBankAccount(row pgx.Row) (domain.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(&m.BankAccountID, &m.BankID, &m.AccountNo, &m.Name, &m.OpeningBalance, &m.CurrentBalance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return mapping.ToDomainBankAccount(m), err
}

func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	_, err := tx.Exec(ctx, `INSERT INTO bank_accounts (`+bankAccountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.BankAccountID, m.BankID, m.AccountNo, m.Name, m.OpeningBalance, m.CurrentBalance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank account number %s already exists", apperrors.ErrDuplicate, m.AccountNo)
		}
		return fmt.Errorf("failed to insert bank account %s: %w", m.BankAccountID, err)
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	acc, err := scanBankAccount(r.Pool.QueryRow(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE bank_account_id = $1;`, bankAccountID))
	if err != nil {
		return nil, notFoundOr(err, "bank account %s", bankAccountID)
	}
	return &acc, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY name ASC, bank_account_id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	result := []domain.BankAccount{}
	for rows.Next() {
		acc, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		result = append(result, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank accounts: %w", err)
	}
	return result, nil
}

func (r *PgxBankAccountRepository) LockBankAccount(ctx context.Context, tx pgx.Tx, bankAccountID string) (*domain.BankAccount, error) {
	acc, err := scanBankAccount(tx.QueryRow(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`, bankAccountID))
	if err != nil {
		return nil, notFoundOr(err, "bank account %s", bankAccountID)
	}
	return &acc, nil
}

func (r *PgxBankAccountRepository) UpdateBankBalance(ctx context.Context, tx pgx.Tx, bankAccountID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bank_accounts SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;`, bankAccountID, newBalance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s balance: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, bankAccountID)
	}
	return nil
}

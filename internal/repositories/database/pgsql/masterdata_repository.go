package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMasterDataRepository reads the ERP master-data tables.
type PgxMasterDataRepository struct {
	BaseRepository
}

func newPgxMasterDataRepository(pool *pgxpool.Pool) portsrepo.MasterDataReader {
	return &PgxMasterDataRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MasterDataReader = (*PgxMasterDataRepository)(nil)

// entityTables maps an account kind to the table holding its names.
var entityTables = map[domain.AccountKind]struct{ table, idCol string }{
	domain.KindCustomer: {"customers", "customer_id"},
	domain.KindAgent:    {"agents", "agent_id"},
	domain.KindEmployee: {"employees", "employee_id"},
	domain.KindBank:     {"bank_accounts", "bank_account_id"},
	domain.KindExpense:  {"expense_categories", "category_id"},
}

func (r *PgxMasterDataRepository) exists(ctx context.Context, tx pgx.Tx, table, idCol, id string) (bool, error) {
	var ok bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1);`, table, idCol)
	if err := r.db(tx).QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check %s %s: %w", table, id, err)
	}
	return ok, nil
}

// PartyExists checks a customer, agent or employee id. OTHER parties have no table and always exist.
func (r *PgxMasterDataRepository) PartyExists(ctx context.Context, tx pgx.Tx, partyType domain.PartyType, partyID string) (bool, error) {
	switch partyType {
	case domain.PartyCustomer:
		return r.exists(ctx, tx, "customers", "customer_id", partyID)
	case domain.PartyAgent:
		return r.exists(ctx, tx, "agents", "agent_id", partyID)
	case domain.PartyEmployee:
		return r.exists(ctx, tx, "employees", "employee_id", partyID)
	}
	return true, nil
}

func (r *PgxMasterDataRepository) ExpenseCategoryExists(ctx context.Context, tx pgx.Tx, categoryID string) (bool, error) {
	return r.exists(ctx, tx, "expense_categories", "category_id", categoryID)
}

func (r *PgxMasterDataRepository) BankExists(ctx context.Context, tx pgx.Tx, bankID string) (bool, error) {
	return r.exists(ctx, tx, "banks", "bank_id", bankID)
}

func (r *PgxMasterDataRepository) scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	defer rows.Close()
	var result []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.BaseSalary, &e.Allowances, &e.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}
	return result, nil
}

func (r *PgxMasterDataRepository) FindEmployeesByIDs(ctx context.Context, tx pgx.Tx, employeeIDs []string) (map[string]domain.Employee, error) {
	result := make(map[string]domain.Employee, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}
	rows, err := r.db(tx).Query(ctx, `
		SELECT employee_id, name, base_salary, allowances, is_active
		FROM employees WHERE employee_id = ANY($1);`, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	employees, err := r.scanEmployees(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		result[e.EmployeeID] = e
	}
	return result, nil
}

func (r *PgxMasterDataRepository) ListActiveEmployees(ctx context.Context, tx pgx.Tx) ([]domain.Employee, error) {
	rows, err := r.db(tx).Query(ctx, `
		SELECT employee_id, name, base_salary, allowances, is_active
		FROM employees WHERE is_active ORDER BY name ASC, employee_id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	return r.scanEmployees(rows)
}

// ResolveAccountNames looks up entity names for dynamic account codes, one query per kind.
func (r *PgxMasterDataRepository) ResolveAccountNames(ctx context.Context, refs []domain.AccountRef) (map[string]string, error) {
	idsByKind := make(map[domain.AccountKind][]string)
	for _, ref := range refs {
		if _, ok := entityTables[ref.Kind]; ok {
			idsByKind[ref.Kind] = append(idsByKind[ref.Kind], ref.ID)
		}
	}

	names := make(map[string]string)
	for kind, ids := range idsByKind {
		t := entityTables[kind]
		query := fmt.Sprintf(`SELECT %s, name FROM %s WHERE %s = ANY($1);`, t.idCol, t.table, t.idCol)
		rows, err := r.Pool.Query(ctx, query, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s names: %w", kind, err)
		}
		for rows.Next() {
			var id, name string
			if err := rows.Scan(&id, &name); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan %s name: %w", kind, err)
			}
			names[domain.AccountRef{Kind: kind, ID: id}.String()] = name
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating %s names: %w", kind, err)
		}
	}
	return names, nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MasterDataReader exposes the master-data tables the core only reads. A nil tx reads
// outside any transaction.
type MasterDataReader interface {
	PartyExists(ctx context.Context, tx pgx.Tx, partyType domain.PartyType, partyID string) (bool, error)
	ExpenseCategoryExists(ctx context.Context, tx pgx.Tx, categoryID string) (bool, error)
	BankExists(ctx context.Context, tx pgx.Tx, bankID string) (bool, error)
	FindEmployeesByIDs(ctx context.Context, tx pgx.Tx, employeeIDs []string) (map[string]domain.Employee, error)
	ListActiveEmployees(ctx context.Context, tx pgx.Tx) ([]domain.Employee, error)

	// ResolveAccountNames maps dynamic account codes (customer:<id>, bank:<id>, ...) to entity names.
	// Codes whose entity is unknown are absent from the result.
	ResolveAccountNames(ctx context.Context, refs []domain.AccountRef) (map[string]string, error)
}

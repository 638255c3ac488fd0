package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager hands out the pgx transaction that a whole financial operation runs in.
// Repository methods taking a pgx.Tx never commit; the service owning the operation does.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is safe to defer: after Commit it is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository reads and writes the single app_settings row.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	var s domain.AppSettings
	err := r.Pool.QueryRow(ctx, `
		SELECT prevent_negative_treasury, prevent_negative_bank, updated_at, updated_by
		FROM app_settings WHERE id = 1;`).Scan(&s.PreventNegativeTreasury, &s.PreventNegativeBank, &s.UpdatedAt, &s.UpdatedBy)
	if err != nil {
		return nil, notFoundOr(err, "app settings")
	}
	return &s, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO app_settings (id, prevent_negative_treasury, prevent_negative_bank, updated_at, updated_by)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET prevent_negative_treasury = EXCLUDED.prevent_negative_treasury,
		    prevent_negative_bank = EXCLUDED.prevent_negative_bank,
		    updated_at = EXCLUDED.updated_at,
		    updated_by = EXCLUDED.updated_by;`,
		settings.PreventNegativeTreasury, settings.PreventNegativeBank, settings.UpdatedAt, settings.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save app settings: %w", err)
	}
	return nil
}

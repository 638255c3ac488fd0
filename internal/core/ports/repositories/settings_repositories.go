package repositories

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
)

// SettingsRepository reads and writes the app_settings row.
type SettingsRepository interface {
	// GetSettings returns ErrNotFound when the row has never been written.
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
	SaveSettings(ctx context.Context, settings domain.AppSettings) error
}

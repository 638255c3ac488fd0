package services

import (
	"context"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

// SettingsProvider is what the engines read before every payment.
type SettingsProvider interface {
	GetSettings(ctx context.Context) (domain.AppSettings, error)
}

// SettingsSvcFacade adds the write side used by the settings endpoint.
type SettingsSvcFacade interface {
	SettingsProvider
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (domain.AppSettings, error)
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/customs_clearance_ledger/internal/apperrors"
	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
)

type settingsService struct {
	BaseService
	repo     portsrepo.SettingsRepository
	defaults domain.AppSettings
}

// NewSettingsService creates the settings provider. defaults apply until settings are first saved.
func NewSettingsService(repo portsrepo.SettingsRepository, defaults domain.AppSettings, options ...ServiceOption) portssvc.SettingsSvcFacade {
	s := &settingsService{repo: repo, defaults: defaults}
	applyOptions(&s.BaseService, options)
	return s
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings")
		return domain.AppSettings{}, err
	}
	return *settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (domain.AppSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return domain.AppSettings{}, err
	}
	if req.PreventNegativeTreasury != nil {
		settings.PreventNegativeTreasury = *req.PreventNegativeTreasury
	}
	if req.PreventNegativeBank != nil {
		settings.PreventNegativeBank = *req.PreventNegativeBank
	}
	settings.UpdatedAt = s.Now()
	settings.UpdatedBy = userID

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return domain.AppSettings{}, err
	}
	s.LogInfo(ctx, "Settings updated",
		slog.Bool("prevent_negative_treasury", settings.PreventNegativeTreasury),
		slog.Bool("prevent_negative_bank", settings.PreventNegativeBank))
	return settings, nil
}

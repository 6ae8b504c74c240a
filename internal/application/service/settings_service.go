package service

import (
	"context"
	"fmt"

	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// DefaultCurrency is the currency assumed before any settings are saved
const DefaultCurrency = "AOA"

// SettingsService handles per-business display settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	audit        *auditor
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, auditRepo repository.AuditLogRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		audit:        newAuditor(auditRepo),
	}
}

// GetSettings returns the business's settings, materializing defaults if none
// were ever saved
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BusinessSettings, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}

	settings, err := s.settingsRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.BusinessSettings{
			BusinessID:    businessID,
			Currency:      DefaultCurrency,
			ExchangeRates: map[string]float64{},
		}
	}
	return settings, nil
}

// SettingsInput represents the settings save input
type SettingsInput struct {
	Currency      string
	ExchangeRates map[string]float64
}

// SaveSettings updates the business's currency and exchange rates
func (s *SettingsService) SaveSettings(ctx context.Context, op Operator, input *SettingsInput) (*entity.BusinessSettings, error) {
	if err := requirePermission(op, PermSettings); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}

	settings, err := s.settingsRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.BusinessSettings{
			ID:         utils.NewID(),
			BusinessID: businessID,
			Currency:   DefaultCurrency,
		}
	}

	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	if input.ExchangeRates != nil {
		settings.ExchangeRates = input.ExchangeRates
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditUpdate, op.Name,
		fmt.Sprintf("Updated settings (currency %s)", settings.Currency))
	return settings, nil
}

package service

import (
	"testing"

	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFixture() (*SettingsService, *fakeSettingsRepo, *fakeAuditRepo) {
	settingsRepo := newFakeSettingsRepo()
	auditRepo := &fakeAuditRepo{}
	return NewSettingsService(settingsRepo, auditRepo), settingsRepo, auditRepo
}

func TestGetSettingsMaterializesDefaults(t *testing.T) {
	service, _, _ := newSettingsFixture()

	settings, err := service.GetSettings(testCtx())
	require.NoError(t, err)
	assert.Equal(t, testBusinessID, settings.BusinessID)
	assert.Equal(t, DefaultCurrency, settings.Currency)
	assert.NotNil(t, settings.ExchangeRates)
	assert.Empty(t, settings.ExchangeRates)
}

func TestSaveSettingsPersistsCurrencyAndRates(t *testing.T) {
	service, settingsRepo, auditRepo := newSettingsFixture()
	ctx := testCtx()

	saved, err := service.SaveSettings(ctx, ownerOp(), &SettingsInput{
		Currency:      "USD",
		ExchangeRates: map[string]float64{"AOA": 830.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", saved.Currency)
	assert.Equal(t, 830.0, saved.ExchangeRates["AOA"])

	stored, err := settingsRepo.GetByBusiness(ctx, testBusinessID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "USD", stored.Currency)

	// Unset fields leave the stored values alone
	saved, err = service.SaveSettings(ctx, ownerOp(), &SettingsInput{})
	require.NoError(t, err)
	assert.Equal(t, "USD", saved.Currency)
	assert.Equal(t, 830.0, saved.ExchangeRates["AOA"])

	assert.Len(t, auditRepo.byAction(enum.AuditUpdate), 2)
}

func TestSaveSettingsRequiresSettingsPermission(t *testing.T) {
	service, _, _ := newSettingsFixture()

	_, err := service.SaveSettings(testCtx(), employeeOp(PermSales), &SettingsInput{Currency: "EUR"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = service.SaveSettings(testCtx(), employeeOp(PermSettings), &SettingsInput{Currency: "EUR"})
	assert.NoError(t, err)
}

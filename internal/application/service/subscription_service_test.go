package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture() (*SubscriptionService, *fakeBusinessRepo, *fakePlanRepo, *fakeAuditRepo) {
	businessRepo := newFakeBusinessRepo()
	planRepo := &fakePlanRepo{}
	auditRepo := &fakeAuditRepo{}
	return NewSubscriptionService(businessRepo, planRepo, auditRepo, 14), businessRepo, planRepo, auditRepo
}

func TestRenewResetsExpiryFromNow(t *testing.T) {
	service, businessRepo, planRepo, auditRepo := newSubscriptionFixture()
	ctx := testCtx()

	planRepo.plans = []entity.SubscriptionPlan{
		{ID: uuid.New(), Code: "quarterly", Name: "Quarterly", DurationMonths: 3},
	}
	// Expiry far in the future; renewing early forfeits the remainder
	business := &entity.Business{
		ID:                 testBusinessID,
		UserID:             uuid.New(),
		Name:               "Salao da Ana",
		SubscriptionStatus: enum.SubscriptionExpired,
		SubscriptionExpiry: time.Now().AddDate(1, 0, 0),
	}
	require.NoError(t, businessRepo.Create(ctx, business))

	before := time.Now()
	renewed, err := service.Renew(ctx, ownerOp(), business.ID, "quarterly")
	require.NoError(t, err)

	assert.Equal(t, enum.SubscriptionActive, renewed.SubscriptionStatus)
	expectedLow := before.AddDate(0, 3, 0).Add(-time.Minute)
	expectedHigh := time.Now().AddDate(0, 3, 0).Add(time.Minute)
	assert.True(t, renewed.SubscriptionExpiry.After(expectedLow))
	assert.True(t, renewed.SubscriptionExpiry.Before(expectedHigh))

	assert.Len(t, auditRepo.byAction(enum.AuditSubscription), 1)
}

func TestRenewUnknownPlanOrBusiness(t *testing.T) {
	service, businessRepo, planRepo, _ := newSubscriptionFixture()
	ctx := testCtx()

	_, err := service.Renew(ctx, ownerOp(), testBusinessID, "nope")
	assert.Error(t, err)

	planRepo.plans = []entity.SubscriptionPlan{{ID: uuid.New(), Code: "monthly", DurationMonths: 1}}
	_, err = service.Renew(ctx, ownerOp(), uuid.New(), "monthly")
	assert.Error(t, err)

	business := &entity.Business{ID: testBusinessID, UserID: uuid.New(), Name: "Loja"}
	require.NoError(t, businessRepo.Create(ctx, business))
	_, err = service.Renew(ctx, ownerOp(), business.ID, "monthly")
	assert.NoError(t, err)
}

func TestRenewIsOwnerOnly(t *testing.T) {
	service, _, _, _ := newSubscriptionFixture()

	_, err := service.Renew(testCtx(), employeeOp(PermSettings), testBusinessID, "monthly")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateBusinessStartsOnTrial(t *testing.T) {
	service, businessRepo, _, _ := newSubscriptionFixture()
	ctx := testCtx()
	op := ownerOp()

	business, err := service.CreateBusiness(ctx, op, "Barbearia do Beto", "barbershop")
	require.NoError(t, err)

	assert.Equal(t, op.ID, business.UserID)
	assert.Equal(t, enum.SubscriptionTrial, business.SubscriptionStatus)
	assert.False(t, business.SubscriptionExpired(time.Now()))
	assert.True(t, business.SubscriptionExpired(time.Now().AddDate(0, 0, 15)))

	owned, err := businessRepo.ListByUser(ctx, op.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	_, err = service.CreateBusiness(ctx, op, "", "")
	assert.Error(t, err)

	_, err = service.CreateBusiness(ctx, employeeOp(), "Loja", "")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

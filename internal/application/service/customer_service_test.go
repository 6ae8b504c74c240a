package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture() (*CustomerService, *fakeCustomerRepo, *fakeAuditRepo) {
	customerRepo := newFakeCustomerRepo()
	auditRepo := &fakeAuditRepo{}
	service := NewCustomerService(customerRepo, newFakeBusinessRepo(), auditRepo, notify.NewNullMessenger())
	return service, customerRepo, auditRepo
}

func TestCreateUpdateDeleteCustomer(t *testing.T) {
	service, customerRepo, auditRepo := newCustomerFixture()
	ctx := testCtx()

	created, err := service.CreateCustomer(ctx, ownerOp(), &CustomerInput{
		Name: "Carla", Phone: "933333333",
	})
	require.NoError(t, err)
	assert.Zero(t, created.LoyaltyPoints)
	assert.Zero(t, created.TotalSpent)

	updated, err := service.UpdateCustomer(ctx, ownerOp(), created.ID, &CustomerInput{
		Name: "Carla Silva", Phone: "933333334",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carla Silva", updated.Name)

	require.NoError(t, service.DeleteCustomer(ctx, ownerOp(), created.ID))
	gone, _ := customerRepo.GetByID(ctx, created.ID)
	assert.Nil(t, gone)

	assert.Len(t, auditRepo.byAction(enum.AuditCreate), 1)
	assert.Len(t, auditRepo.byAction(enum.AuditUpdate), 1)
	assert.Len(t, auditRepo.byAction(enum.AuditDelete), 1)
}

func TestQuickAddCreatesMinimalRecord(t *testing.T) {
	service, _, auditRepo := newCustomerFixture()

	customer, err := service.QuickAdd(testCtx(), "Walk In", "911111111")
	require.NoError(t, err)
	assert.Equal(t, "Added at point of sale", customer.Notes)
	assert.Zero(t, customer.TotalSpent)
	// The quick-add itself counts as a visit, so the walk-in can go dormant later
	require.NotNil(t, customer.LastVisit)
	assert.WithinDuration(t, time.Now(), *customer.LastVisit, time.Minute)
	// Quick-add is a checkout convenience, not an audited catalog change
	assert.Empty(t, auditRepo.logs)

	_, err = service.QuickAdd(testCtx(), "", "")
	assert.Error(t, err)
}

func TestCreditAccumulatesSpendAndPoints(t *testing.T) {
	service, customerRepo, _ := newCustomerFixture()
	ctx := testCtx()

	customer := &entity.Customer{ID: uuid.New(), BusinessID: testBusinessID, Name: "Carla"}
	require.NoError(t, customerRepo.Create(ctx, customer))

	require.NoError(t, service.Credit(ctx, customer.ID, 15000)) // 150.00
	require.NoError(t, service.Credit(ctx, customer.ID, 9900))  // 99.00

	credited, _ := customerRepo.GetByID(ctx, customer.ID)
	assert.Equal(t, int64(24900), credited.TotalSpent)
	// Points floor per credit: 150.00 earns 1, 99.00 earns 0
	assert.Equal(t, 1, credited.LoyaltyPoints)
	assert.NotNil(t, credited.LastVisit)

	// Crediting a missing customer is a silent no-op
	assert.NoError(t, service.Credit(ctx, uuid.New(), 1000))
}

func TestListDormantUsesCutoff(t *testing.T) {
	service, customerRepo, _ := newCustomerFixture()
	ctx := testCtx()

	old := time.Now().AddDate(0, 0, -60)
	recent := time.Now().AddDate(0, 0, -5)
	require.NoError(t, customerRepo.Create(ctx, &entity.Customer{
		ID: uuid.New(), BusinessID: testBusinessID, Name: "Dormant", LastVisit: &old,
	}))
	require.NoError(t, customerRepo.Create(ctx, &entity.Customer{
		ID: uuid.New(), BusinessID: testBusinessID, Name: "Active", LastVisit: &recent,
	}))
	require.NoError(t, customerRepo.Create(ctx, &entity.Customer{
		ID: uuid.New(), BusinessID: testBusinessID, Name: "Never visited",
	}))

	dormant, err := service.ListDormant(ctx, 30)
	require.NoError(t, err)
	require.Len(t, dormant, 1)
	assert.Equal(t, "Dormant", dormant[0].Name)

	// Non-positive day windows fall back to the 30-day default
	dormant, err = service.ListDormant(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, dormant, 1)
}

func TestReEngageValidatesCustomer(t *testing.T) {
	service, customerRepo, _ := newCustomerFixture()
	ctx := testCtx()

	err := service.ReEngage(ctx, ownerOp(), uuid.New())
	assert.Error(t, err)

	customer := &entity.Customer{ID: uuid.New(), BusinessID: testBusinessID, Name: "Carla", Phone: "933333333"}
	require.NoError(t, customerRepo.Create(ctx, customer))
	assert.NoError(t, service.ReEngage(ctx, ownerOp(), customer.ID))

	err = service.ReEngage(ctx, employeeOp(PermSales), customer.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

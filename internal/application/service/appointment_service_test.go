package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	service      *AppointmentService
	apptRepo     *fakeAppointmentRepo
	itemRepo     *fakeItemRepo
	saleRepo     *fakeSaleRepo
	customerRepo *fakeCustomerRepo
	auditRepo    *fakeAuditRepo
}

func newAppointmentFixture() *appointmentFixture {
	apptRepo := newFakeAppointmentRepo()
	itemRepo := newFakeItemRepo()
	saleRepo := &fakeSaleRepo{}
	customerRepo := newFakeCustomerRepo()
	businessRepo := newFakeBusinessRepo()
	auditRepo := &fakeAuditRepo{}
	messenger := notify.NewNullMessenger()

	customers := NewCustomerService(customerRepo, businessRepo, auditRepo, messenger)
	sales := NewSalesService(saleRepo, itemRepo, customers, auditRepo)
	service := NewAppointmentService(apptRepo, itemRepo, businessRepo, customers, sales, auditRepo, messenger)

	return &appointmentFixture{
		service:      service,
		apptRepo:     apptRepo,
		itemRepo:     itemRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
	}
}

func (f *appointmentFixture) addService(name string, priceCents int64) *entity.InventoryItem {
	return f.itemRepo.add(entity.InventoryItem{
		Name: name, Type: enum.ItemService,
		Quantity: entity.ServiceAvailableQuantity, SellingPrice: priceCents,
	})
}

func (f *appointmentFixture) addCustomer(name string) *entity.Customer {
	customer := &entity.Customer{ID: uuid.New(), BusinessID: testBusinessID, Name: name, Phone: "900000000"}
	_ = f.customerRepo.Create(testCtx(), customer)
	return customer
}

func (f *appointmentFixture) book(t *testing.T, customerID uuid.UUID, serviceID uuid.UUID, date, start string, duration int) *entity.Appointment {
	t.Helper()
	appointment, err := f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerID:      &customerID,
		ServiceItemIDs:  []uuid.UUID{serviceID},
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
	})
	require.NoError(t, err)
	return appointment
}

func TestCreateAppointmentSnapshotsServices(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)
	color := f.addService("Coloring", 8000)

	appointment, err := f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerID:     &customer.ID,
		ServiceItemIDs: []uuid.UUID{cut.ID, color.ID},
		Date:           "2026-09-10",
		StartTime:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.AppointmentScheduled, appointment.Status)
	assert.Equal(t, 60, appointment.DurationMinutes)
	assert.Equal(t, int64(11000), appointment.TotalAmount)
	require.Len(t, appointment.Services, 2)
	assert.Equal(t, "Haircut", appointment.Services[0].Name)
	assert.Equal(t, customer.Name, appointment.CustomerName)
	assert.Len(t, f.auditRepo.byAction(enum.AuditAppointment), 1)
}

func TestCreateAppointmentQuickAddsWalkIn(t *testing.T) {
	f := newAppointmentFixture()
	cut := f.addService("Haircut", 3000)

	appointment, err := f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerName:   "Walk In",
		CustomerPhone:  "911111111",
		ServiceItemIDs: []uuid.UUID{cut.ID},
		Date:           "2026-09-10",
		StartTime:      "09:00",
	})
	require.NoError(t, err)

	created, _ := f.customerRepo.GetByID(testCtx(), appointment.CustomerID)
	require.NotNil(t, created)
	assert.Equal(t, "Walk In", created.Name)
	assert.Equal(t, "Added at point of sale", created.Notes)
}

func TestCreateAppointmentRejectsOverlap(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	// 10:30 for 30 minutes falls inside 10:00-11:00
	_, err := f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerID:      &customer.ID,
		ServiceItemIDs:  []uuid.UUID{cut.ID},
		Date:            "2026-09-10",
		StartTime:       "10:30",
		DurationMinutes: 30,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)

	// 11:00 touches the end boundary and is free
	_, err = f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerID:      &customer.ID,
		ServiceItemIDs:  []uuid.UUID{cut.ID},
		Date:            "2026-09-10",
		StartTime:       "11:00",
		DurationMinutes: 30,
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentForceOverridesOverlap(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	_, err := f.service.CreateAppointment(testCtx(), ownerOp(), &CreateAppointmentInput{
		CustomerID:      &customer.ID,
		ServiceItemIDs:  []uuid.UUID{cut.ID},
		Date:            "2026-09-10",
		StartTime:       "10:30",
		DurationMinutes: 30,
		Force:           true,
	})
	assert.NoError(t, err)
}

func TestCheckOverlapIgnoresCancelledAndCompleted(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	overlaps, err := f.service.CheckOverlap(testCtx(), "2026-09-10", "10:00", 60, nil)
	require.NoError(t, err)
	assert.True(t, overlaps)

	_, err = f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentCancelled)
	require.NoError(t, err)

	overlaps, err = f.service.CheckOverlap(testCtx(), "2026-09-10", "10:00", 60, nil)
	require.NoError(t, err)
	assert.False(t, overlaps)
}

func TestRescheduleCancelsOriginalAndLinksReplacement(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	original := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	replacement, err := f.service.Reschedule(testCtx(), ownerOp(), original.ID, &RescheduleInput{
		Date:      "2026-09-11",
		StartTime: "14:00",
	})
	require.NoError(t, err)

	cancelled, _ := f.apptRepo.GetByID(testCtx(), original.ID)
	assert.Equal(t, enum.AppointmentCancelled, cancelled.Status)

	assert.Equal(t, enum.AppointmentScheduled, replacement.Status)
	require.NotNil(t, replacement.RescheduledFromID)
	assert.Equal(t, original.ID, *replacement.RescheduledFromID)
	assert.Equal(t, original.Duration(), replacement.DurationMinutes)
	assert.Equal(t, original.TotalAmount, replacement.TotalAmount)

	// One entry for the booking, one for the reschedule
	assert.Len(t, f.auditRepo.byAction(enum.AuditAppointment), 2)
}

func TestRescheduleRejectsTerminalAppointment(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)
	_, err := f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentCancelled)
	require.NoError(t, err)

	_, err = f.service.Reschedule(testCtx(), ownerOp(), appointment.ID, &RescheduleInput{
		Date:      "2026-09-11",
		StartTime: "14:00",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateStatusEnforcesStateMachine(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	confirmed, err := f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentConfirmed, confirmed.Status)

	// confirmed -> scheduled is not a legal transition
	_, err = f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentScheduled)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentNoShow)
	require.NoError(t, err)

	// noshow is terminal
	_, err = f.service.UpdateStatus(testCtx(), ownerOp(), appointment.ID, enum.AppointmentConfirmed)
	require.Error(t, err)
}

func TestCompleteRecordsSaleAndCreditsCustomer(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 30000)

	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	completed, err := f.service.Complete(testCtx(), ownerOp(), appointment.ID, "cash")
	require.NoError(t, err)
	assert.Equal(t, enum.AppointmentCompleted, completed.Status)

	require.Len(t, f.saleRepo.sales, 1)
	sale := f.saleRepo.sales[0]
	assert.Equal(t, cut.ID, sale.ItemID)
	assert.Equal(t, float64(1), sale.Quantity)
	assert.Equal(t, int64(30000), sale.TotalRevenue)
	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, customer.ID, *sale.CustomerID)

	credited, _ := f.customerRepo.GetByID(testCtx(), customer.ID)
	assert.Equal(t, int64(30000), credited.TotalSpent)
	assert.Equal(t, 3, credited.LoyaltyPoints)

	// Completing again is rejected
	_, err = f.service.Complete(testCtx(), ownerOp(), appointment.ID, "cash")
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDaySlotsMarksOccupiedHalfHours(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	slots, err := f.service.DaySlots(testCtx(), "2026-09-10")
	require.NoError(t, err)
	// 08:00 to 19:00 in half hours
	require.Len(t, slots, 22)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "18:30", slots[len(slots)-1].Time)

	booked := make(map[string]bool)
	for _, slot := range slots {
		if slot.Booked {
			booked[slot.Time] = true
			require.NotNil(t, slot.AppointmentID)
			assert.Equal(t, appointment.ID, *slot.AppointmentID)
		}
	}
	assert.Equal(t, map[string]bool{"10:00": true, "10:30": true}, booked)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)

	cases := []struct {
		name  string
		input CreateAppointmentInput
	}{
		{"no services", CreateAppointmentInput{CustomerID: &customer.ID, Date: "2026-09-10", StartTime: "10:00"}},
		{"bad date", CreateAppointmentInput{CustomerID: &customer.ID, ServiceItemIDs: []uuid.UUID{cut.ID}, Date: "10/09/2026", StartTime: "10:00"}},
		{"bad time", CreateAppointmentInput{CustomerID: &customer.ID, ServiceItemIDs: []uuid.UUID{cut.ID}, Date: "2026-09-10", StartTime: "25:99"}},
		{"no customer", CreateAppointmentInput{ServiceItemIDs: []uuid.UUID{cut.ID}, Date: "2026-09-10", StartTime: "10:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.CreateAppointment(testCtx(), ownerOp(), &tc.input)
			assert.Error(t, err)
		})
	}
}

func TestAppointmentOperationsRequirePermission(t *testing.T) {
	f := newAppointmentFixture()
	customer := f.addCustomer("Dina")
	cut := f.addService("Haircut", 3000)
	appointment := f.book(t, customer.ID, cut.ID, "2026-09-10", "10:00", 60)

	op := employeeOp(PermSales)

	_, err := f.service.CreateAppointment(testCtx(), op, &CreateAppointmentInput{})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = f.service.Reschedule(testCtx(), op, appointment.ID, &RescheduleInput{})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = f.service.UpdateStatus(testCtx(), op, appointment.ID, enum.AppointmentConfirmed)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = f.service.Complete(testCtx(), op, appointment.ID, "cash")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

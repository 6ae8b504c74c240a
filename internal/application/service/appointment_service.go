package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/pkg/apperror"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/sangkips/bizledger-api/pkg/pagination"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// Booking grid bounds, half-hour steps
const (
	dayStartMinute = 8 * 60
	dayEndMinute   = 19 * 60
	slotStepMinute = 30
)

// SaleRecorder records completed-appointment revenue as a regular checkout
type SaleRecorder interface {
	BatchSale(ctx context.Context, op Operator, lines []SaleLineInput, paymentMethod string, customerID *uuid.UUID) ([]entity.Sale, error)
}

// AppointmentService handles the booking lifecycle: scheduling, overlap
// detection, status transitions and completion into a sale
type AppointmentService struct {
	apptRepo     repository.AppointmentRepository
	itemRepo     repository.ItemRepository
	businessRepo repository.BusinessRepository
	customers    *CustomerService
	sales        SaleRecorder
	messenger    notify.Messenger
	audit        *auditor
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	apptRepo repository.AppointmentRepository,
	itemRepo repository.ItemRepository,
	businessRepo repository.BusinessRepository,
	customers *CustomerService,
	sales SaleRecorder,
	auditRepo repository.AuditLogRepository,
	messenger notify.Messenger,
) *AppointmentService {
	return &AppointmentService{
		apptRepo:     apptRepo,
		itemRepo:     itemRepo,
		businessRepo: businessRepo,
		customers:    customers,
		sales:        sales,
		messenger:    messenger,
		audit:        newAuditor(auditRepo),
	}
}

// CreateAppointmentInput represents the booking input. Either CustomerID or a
// quick-add name+phone pair must be provided.
type CreateAppointmentInput struct {
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	ServiceItemIDs  []uuid.UUID
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
	Notes           string
	Force           bool // book despite an overlap warning
}

// CreateAppointment books a new appointment. The overlap check is advisory:
// a detected conflict blocks the booking unless Force is set.
func (s *AppointmentService) CreateAppointment(ctx context.Context, op Operator, input *CreateAppointmentInput) (*entity.Appointment, error) {
	if err := requirePermission(op, PermAppointments); err != nil {
		return nil, err
	}
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.ErrBusinessRequired
	}
	if len(input.ServiceItemIDs) == 0 {
		return nil, apperror.NewBadRequestError("At least one service is required")
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	startMinute, err := parseClock(input.StartTime)
	if err != nil {
		return nil, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	customer, err := s.resolveCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	services, totalAmount, err := s.snapshotServices(ctx, input.ServiceItemIDs)
	if err != nil {
		return nil, err
	}

	if !input.Force {
		overlaps, err := s.overlapsAt(ctx, input.Date, startMinute, duration, nil)
		if err != nil {
			return nil, err
		}
		if overlaps {
			return nil, apperror.NewConflictError("Time slot overlaps an existing appointment")
		}
	}

	appointment := &entity.Appointment{
		ID:              utils.NewID(),
		BusinessID:      businessID,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		Services:        services,
		TotalAmount:     totalAmount,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: duration,
		Status:          enum.AppointmentScheduled,
		Notes:           input.Notes,
		CreatedByName:   op.Name,
	}
	if err := s.apptRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditAppointment, op.Name,
		fmt.Sprintf("Booked appointment for '%s' on %s at %s", customer.Name, input.Date, input.StartTime))

	return appointment, nil
}

// RescheduleInput represents the new slot for a rescheduled appointment
type RescheduleInput struct {
	Date            string
	StartTime       string
	DurationMinutes int
	Force           bool
}

// Reschedule cancels the original appointment and books a fresh one in the
// new slot carrying a back-reference to the original
func (s *AppointmentService) Reschedule(ctx context.Context, op Operator, id uuid.UUID, input *RescheduleInput) (*entity.Appointment, error) {
	if err := requirePermission(op, PermAppointments); err != nil {
		return nil, err
	}

	original, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if original.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Appointment can no longer be rescheduled")
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	startMinute, err := parseClock(input.StartTime)
	if err != nil {
		return nil, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = original.Duration()
	}

	if !input.Force {
		overlaps, err := s.overlapsAt(ctx, input.Date, startMinute, duration, &id)
		if err != nil {
			return nil, err
		}
		if overlaps {
			return nil, apperror.NewConflictError("Time slot overlaps an existing appointment")
		}
	}

	original.Status = enum.AppointmentCancelled
	if err := s.apptRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	replacement := &entity.Appointment{
		ID:                utils.NewID(),
		BusinessID:        original.BusinessID,
		CustomerID:        original.CustomerID,
		CustomerName:      original.CustomerName,
		CustomerPhone:     original.CustomerPhone,
		Services:          original.Services,
		TotalAmount:       original.TotalAmount,
		Date:              input.Date,
		StartTime:         input.StartTime,
		DurationMinutes:   duration,
		Status:            enum.AppointmentScheduled,
		Notes:             original.Notes,
		RescheduledFromID: &original.ID,
		CreatedByName:     op.Name,
	}
	if err := s.apptRepo.Create(ctx, replacement); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditAppointment, op.Name,
		fmt.Sprintf("Rescheduled appointment for '%s' to %s at %s",
			original.CustomerName, input.Date, input.StartTime))

	return replacement, nil
}

// UpdateStatus applies a lifecycle transition. Confirming fires the outbound
// confirmation message.
func (s *AppointmentService) UpdateStatus(ctx context.Context, op Operator, id uuid.UUID, next enum.AppointmentStatus) (*entity.Appointment, error) {
	if err := requirePermission(op, PermAppointments); err != nil {
		return nil, err
	}

	appointment, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if !appointment.Status.CanTransitionTo(next) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot change appointment from %s to %s", appointment.Status, next))
	}

	appointment.Status = next
	if err := s.apptRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if next == enum.AppointmentConfirmed {
		s.sendConfirmation(ctx, appointment)
	}

	s.audit.record(ctx, enum.AuditAppointment, op.Name,
		fmt.Sprintf("Appointment for '%s' marked %s", appointment.CustomerName, next))

	return appointment, nil
}

// Complete marks the appointment completed and records its revenue as a
// checkout, crediting the customer
func (s *AppointmentService) Complete(ctx context.Context, op Operator, id uuid.UUID, paymentMethod string) (*entity.Appointment, error) {
	if err := requirePermission(op, PermAppointments); err != nil {
		return nil, err
	}

	appointment, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if !appointment.Status.CanTransitionTo(enum.AppointmentCompleted) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot complete appointment in status %s", appointment.Status))
	}

	appointment.Status = enum.AppointmentCompleted
	if err := s.apptRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	lines := make([]SaleLineInput, 0, len(appointment.Services))
	for _, svc := range appointment.Services {
		lines = append(lines, SaleLineInput{ItemID: svc.ItemID, Quantity: 1})
	}
	customerID := appointment.CustomerID
	if _, err := s.sales.BatchSale(ctx, op, lines, paymentMethod, &customerID); err != nil {
		return nil, err
	}

	s.audit.record(ctx, enum.AuditAppointment, op.Name,
		fmt.Sprintf("Completed appointment for '%s'", appointment.CustomerName))

	return appointment, nil
}

// CheckOverlap reports whether a candidate slot intersects any active
// appointment on the same date. Durations default to 60 minutes.
func (s *AppointmentService) CheckOverlap(ctx context.Context, date, startTime string, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	if err := validateDate(date); err != nil {
		return false, err
	}
	startMinute, err := parseClock(startTime)
	if err != nil {
		return false, err
	}
	if durationMinutes <= 0 {
		durationMinutes = 60
	}
	return s.overlapsAt(ctx, date, startMinute, durationMinutes, excludeID)
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments lists appointments with filtering
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.apptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}

// Slot is one half-hour cell of the day's booking grid
type Slot struct {
	Time          string     `json:"time"`
	Booked        bool       `json:"booked"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
}

// DaySlots returns the half-hour booking grid from 08:00 to 19:00 with
// occupancy for the given date
func (s *AppointmentService) DaySlots(ctx context.Context, date string) ([]Slot, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	appointments, err := s.apptRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	active := filterActive(appointments)

	var slots []Slot
	for minute := dayStartMinute; minute < dayEndMinute; minute += slotStepMinute {
		slot := Slot{Time: formatClock(minute)}
		for i := range active {
			start, err := parseClock(active[i].StartTime)
			if err != nil {
				continue
			}
			end := start + active[i].Duration()
			if minute < end && minute+slotStepMinute > start {
				slot.Booked = true
				slot.AppointmentID = &active[i].ID
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (s *AppointmentService) resolveCustomer(ctx context.Context, input *CreateAppointmentInput) (*entity.Customer, error) {
	if input.CustomerID != nil {
		return s.customers.GetCustomer(ctx, *input.CustomerID)
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewBadRequestError("Customer is required")
	}
	return s.customers.QuickAdd(ctx, strings.TrimSpace(input.CustomerName), input.CustomerPhone)
}

// snapshotServices resolves live service items into booking-time snapshots.
// The total is the sum of current selling prices.
func (s *AppointmentService) snapshotServices(ctx context.Context, itemIDs []uuid.UUID) ([]entity.ServiceRef, int64, error) {
	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uuid.UUID]*entity.InventoryItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var refs []entity.ServiceRef
	var total int64
	for _, id := range itemIDs {
		item, found := byID[id]
		if !found {
			continue
		}
		refs = append(refs, entity.ServiceRef{ItemID: item.ID, Name: item.Name})
		total += item.EffectiveSellingPrice()
	}
	if len(refs) == 0 {
		return nil, 0, apperror.NewBadRequestError("No valid services selected")
	}
	return refs, total, nil
}

// overlapsAt applies the half-open interval test: a candidate [start, start+d)
// conflicts when candidateStart < existingEnd and candidateEnd > existingStart.
func (s *AppointmentService) overlapsAt(ctx context.Context, date string, startMinute, durationMinutes int, excludeID *uuid.UUID) (bool, error) {
	appointments, err := s.apptRepo.ListByDate(ctx, date)
	if err != nil {
		return false, err
	}

	candidateEnd := startMinute + durationMinutes
	for _, existing := range filterActive(appointments) {
		if excludeID != nil && existing.ID == *excludeID {
			continue
		}
		existingStart, err := parseClock(existing.StartTime)
		if err != nil {
			continue
		}
		existingEnd := existingStart + existing.Duration()
		if startMinute < existingEnd && candidateEnd > existingStart {
			return true, nil
		}
	}
	return false, nil
}

// filterActive keeps appointments that still occupy their slot. Cancelled and
// completed bookings free the slot.
func filterActive(appointments []entity.Appointment) []entity.Appointment {
	active := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == enum.AppointmentCancelled || a.Status == enum.AppointmentCompleted {
			continue
		}
		active = append(active, a)
	}
	return active
}

func (s *AppointmentService) sendConfirmation(ctx context.Context, appointment *entity.Appointment) {
	if appointment.CustomerPhone == "" {
		return
	}
	businessName := ""
	if businessID, ok := infraRepo.GetBusinessID(ctx); ok {
		if business, err := s.businessRepo.GetByID(ctx, businessID); err == nil && business != nil {
			businessName = business.Name
		}
	}
	message := notify.AppointmentConfirmation(
		appointment.CustomerName, businessName, appointment.Date, appointment.StartTime)

	go func(phone, message string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.messenger.Send(sendCtx, phone, message); err != nil {
			log.Printf("notify: appointment confirmation failed: %v", err)
		}
	}(appointment.CustomerPhone, message)
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}
	return nil
}

func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, apperror.NewBadRequestError("Time must be in HH:MM format")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// AppointmentHandler handles booking HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles booking a new appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.CreateAppointmentInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		Force:           req.Force,
	}
	if req.CustomerID != "" {
		if id, err := uuid.Parse(req.CustomerID); err == nil {
			input.CustomerID = &id
		}
	}
	for _, raw := range req.ServiceItemIDs {
		if id, err := uuid.Parse(raw); err == nil {
			input.ServiceItemIDs = append(input.ServiceItemIDs, id)
		}
	}

	op := GetOperator(c)
	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), op, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appointment)
}

// Get handles retrieving one appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// List handles listing appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter request.AppointmentFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.AppointmentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Status:   filter.Status,
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// Reschedule handles moving an appointment to a new slot
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	appointment, err := h.appointmentService.Reschedule(c.Request.Context(), op, id, &service.RescheduleInput{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Force:           req.Force,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment rescheduled successfully", appointment)
}

// UpdateStatus handles lifecycle transitions
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	appointment, err := h.appointmentService.UpdateStatus(c.Request.Context(), op, id, enum.AppointmentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment status updated successfully", appointment)
}

// Complete handles finishing an appointment and recording its sale
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	appointment, err := h.appointmentService.Complete(c.Request.Context(), op, id, req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment completed successfully", appointment)
}

// CheckOverlap handles the advisory conflict probe
func (h *AppointmentHandler) CheckOverlap(c *gin.Context) {
	date := c.Query("date")
	startTime := c.Query("start_time")
	duration := 0
	if raw := c.Query("duration_minutes"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			duration = parsed
		}
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			excludeID = &id
		}
	}

	overlaps, err := h.appointmentService.CheckOverlap(c.Request.Context(), date, startTime, duration, excludeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overlap check completed", gin.H{"overlaps": overlaps})
}

// DaySlots handles the half-hour booking grid for a date
func (h *AppointmentHandler) DaySlots(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.appointmentService.DaySlots(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Slots retrieved successfully", slots)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication and employee management HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		Category:     req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account registered successfully", result)
}

// Login handles phone+password authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logged in successfully", result)
}

// RefreshToken exchanges a refresh token for a fresh pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", result)
}

// ChangePassword replaces the operator's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	if err := h.authService.ChangePassword(c.Request.Context(), op, req.CurrentPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// ListEmployees lists the business's staff
func (h *AuthHandler) ListEmployees(c *gin.Context) {
	employees, err := h.authService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employees retrieved successfully", employees)
}

// CreateEmployee adds a staff member
func (h *AuthHandler) CreateEmployee(c *gin.Context) {
	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	employee, err := h.authService.CreateEmployee(c.Request.Context(), op, &service.EmployeeInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		Permissions: req.Permissions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// UpdateEmployee updates a staff member
func (h *AuthHandler) UpdateEmployee(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	employee, err := h.authService.UpdateEmployee(c.Request.Context(), op, id, &service.EmployeeInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		Permissions: req.Permissions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// DeleteEmployee removes a staff member
func (h *AuthHandler) DeleteEmployee(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	op := GetOperator(c)
	if err := h.authService.DeleteEmployee(c.Request.Context(), op, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}

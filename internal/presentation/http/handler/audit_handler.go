package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/pagination"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles listing audit entries newest first
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.AuditLogFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Action:     c.Query("action"),
	}

	result, err := h.auditService.ListLogs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit logs retrieved successfully", result)
}

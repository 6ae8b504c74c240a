package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
)

// SubscriptionHandler handles subscription and business HTTP requests
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// ListPlans handles listing the available subscription plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plans retrieved successfully", plans)
}

// Renew handles extending a business's subscription
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	var req request.RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	op := GetOperator(c)
	business, err := h.subscriptionService.Renew(c.Request.Context(), op, businessID, req.PlanCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscription renewed successfully", business)
}

// CreateBusiness handles adding another business under the same owner
func (h *SubscriptionHandler) CreateBusiness(c *gin.Context) {
	var req request.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	op := GetOperator(c)
	business, err := h.subscriptionService.CreateBusiness(c.Request.Context(), op, req.Name, req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Business created successfully", business)
}

// ListBusinesses handles listing the owner's businesses
func (h *SubscriptionHandler) ListBusinesses(c *gin.Context) {
	op := GetOperator(c)
	businesses, err := h.subscriptionService.ListBusinesses(c.Request.Context(), op)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Businesses retrieved successfully", businesses)
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
)

// BusinessHeader selects the active business for multi-business owners
const BusinessHeader = "X-Business-ID"

// BusinessMiddleware resolves the active business for the request. The token
// carries the default business; owners may switch with the X-Business-ID
// header, validated against ownership. The resolved business ID is placed in
// the request context so every repository query is scoped to it.
func BusinessMiddleware(businessRepo repository.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, ok := claimsBusinessID(c)

		if header := c.GetHeader(BusinessHeader); header != "" {
			headerID, err := uuid.Parse(header)
			if err != nil {
				response.BadRequest(c, "Invalid business ID")
				c.Abort()
				return
			}

			if headerID != businessID {
				role, _ := c.Get("operator_role")
				if role != string(enum.RoleOwner) {
					response.Forbidden(c, "Access denied to this business")
					c.Abort()
					return
				}

				business, err := businessRepo.GetByID(c.Request.Context(), headerID)
				if err != nil || business == nil {
					response.NotFound(c, "Business not found")
					c.Abort()
					return
				}
				operatorID, _ := c.Get("operator_id")
				if ownerID, isID := operatorID.(uuid.UUID); !isID || business.UserID != ownerID {
					response.Forbidden(c, "Access denied to this business")
					c.Abort()
					return
				}
				c.Set("business", business)
			}
			businessID = headerID
			ok = true
		}

		if !ok || businessID == uuid.Nil {
			response.BadRequest(c, "Business context required")
			c.Abort()
			return
		}

		c.Set("business_id", businessID)
		ctx := infraRepo.WithBusiness(c.Request.Context(), businessID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireActiveSubscription blocks business operations once the subscription
// window has passed. Renewal and auth routes stay reachable.
func RequireActiveSubscription(businessRepo repository.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, ok := GetBusinessID(c)
		if !ok {
			response.BadRequest(c, "Business context required")
			c.Abort()
			return
		}

		business := cachedBusiness(c)
		if business == nil {
			var err error
			business, err = businessRepo.GetByID(c.Request.Context(), businessID)
			if err != nil || business == nil {
				response.NotFound(c, "Business not found")
				c.Abort()
				return
			}
			c.Set("business", business)
		}

		if business.SubscriptionExpired(time.Now()) {
			response.PaymentRequired(c, "Subscription has expired")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetBusinessID retrieves the active business ID from the Gin context
func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("business_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func claimsBusinessID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("claims_business_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func cachedBusiness(c *gin.Context) *entity.Business {
	val, exists := c.Get("business")
	if !exists {
		return nil
	}
	business, ok := val.(*entity.Business)
	if !ok {
		return nil
	}
	return business
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. It resolves the
// operator session into the Gin context.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_name", claims.Name)
		c.Set("operator_phone", claims.Phone)
		c.Set("operator_role", claims.Role)
		c.Set("operator_permissions", claims.Permissions)
		if claims.BusinessID != nil {
			c.Set("claims_business_id", *claims.BusinessID)
		}

		c.Next()
	}
}

// RequirePermission creates a middleware that requires a capability flag.
// Owners hold every flag implicitly. The engine re-checks the same flag at
// the operation boundary; this layer only fails fast.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("operator_role")
		if role == string(enum.RoleOwner) {
			c.Next()
			return
		}

		permissionsVal, exists := c.Get("operator_permissions")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		permissions, ok := permissionsVal.([]string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, p := range permissions {
			if p == permission {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}

// RequireOwner creates a middleware that restricts a route to account owners
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("operator_role")
		if role != string(enum.RoleOwner) {
			response.Forbidden(c, "Owner access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// GetOperator resolves the acting operator from the Gin context. Returns the
// zero operator when the request is unauthenticated.
func GetOperator(c *gin.Context) service.Operator {
	var op service.Operator

	if idVal, exists := c.Get("operator_id"); exists {
		if id, ok := idVal.(uuid.UUID); ok {
			op.ID = id
		}
	}
	if nameVal, exists := c.Get("operator_name"); exists {
		if name, ok := nameVal.(string); ok {
			op.Name = name
		}
	}
	if roleVal, exists := c.Get("operator_role"); exists {
		if role, ok := roleVal.(string); ok {
			op.Role = enum.OperatorRole(role)
		}
	}
	if permsVal, exists := c.Get("operator_permissions"); exists {
		if perms, ok := permsVal.([]string); ok {
			op.Permissions = perms
		}
	}

	return op
}

// ParseIDParam parses a UUID path parameter
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

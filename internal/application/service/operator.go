package service

import (
	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"github.com/sangkips/bizledger-api/pkg/apperror"
)

// Permission flags gating engine operations. Owners implicitly hold all of
// them; employees carry an explicit subset resolved at login.
const (
	PermInventory    = "inventory"
	PermSales        = "sales"
	PermAppointments = "appointments"
	PermExpenses     = "expenses"
	PermCustomers    = "customers"
	PermReports      = "reports"
	PermSettings     = "settings"
)

// Operator is the resolved caller of an engine operation: who is acting, in
// which role, and which capability flags they hold. Every mutating operation
// takes an Operator and enforces the needed capability itself.
type Operator struct {
	ID          uuid.UUID
	Name        string
	Role        enum.OperatorRole
	Permissions []string
}

// Can reports whether the operator holds the given permission flag
func (o Operator) Can(perm string) bool {
	if o.Role == enum.RoleOwner {
		return true
	}
	for _, p := range o.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// IsOwner reports whether the operator is the account owner
func (o Operator) IsOwner() bool {
	return o.Role == enum.RoleOwner
}

func requirePermission(op Operator, perm string) error {
	if !op.Can(perm) {
		return apperror.ErrForbidden
	}
	return nil
}

func requireOwner(op Operator) error {
	if !op.IsOwner() {
		return apperror.ErrForbidden
	}
	return nil
}

package enum

// AuditAction is the closed set of action kinds recorded in the audit log
type AuditAction string

const (
	AuditCreate        AuditAction = "CREATE"
	AuditUpdate        AuditAction = "UPDATE"
	AuditDelete        AuditAction = "DELETE"
	AuditSale          AuditAction = "SALE"
	AuditLogin         AuditAction = "LOGIN"
	AuditSubscription  AuditAction = "SUBSCRIPTION"
	AuditCloseRegister AuditAction = "CLOSE_REGISTER"
	AuditExpense       AuditAction = "EXPENSE"
	AuditAppointment   AuditAction = "APPOINTMENT"
	AuditReseller      AuditAction = "RESELLER"
)

// IsValid checks if the audit action is a known value
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditCreate, AuditUpdate, AuditDelete, AuditSale, AuditLogin,
		AuditSubscription, AuditCloseRegister, AuditExpense, AuditAppointment,
		AuditReseller:
		return true
	}
	return false
}

// OperatorRole identifies the kind of authenticated actor
type OperatorRole string

const (
	RoleOwner    OperatorRole = "owner"
	RoleEmployee OperatorRole = "employee"
)

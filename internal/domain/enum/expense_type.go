package enum

// ExpenseType distinguishes recurring monthly obligations from one-off outflows
type ExpenseType string

const (
	// ExpenseFixed is a recurring monthly obligation that regenerates its next
	// occurrence upon payment
	ExpenseFixed ExpenseType = "fixed"
	// ExpenseVariable is a one-off outflow
	ExpenseVariable ExpenseType = "variable"
)

// IsValid checks if the expense type is a known value
func (t ExpenseType) IsValid() bool {
	return t == ExpenseFixed || t == ExpenseVariable
}

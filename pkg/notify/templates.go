package notify

import "fmt"

// AppointmentConfirmation composes the message sent when an appointment is
// confirmed by the business
func AppointmentConfirmation(customerName, businessName, date, startTime string) string {
	return fmt.Sprintf(
		"Hello %s! Your appointment at %s on %s at %s is confirmed. See you soon!",
		customerName, businessName, date, startTime,
	)
}

// LowStockSupplier composes the restock request sent to a supplier when items
// fall below their alert threshold
func LowStockSupplier(supplierName, businessName string, itemNames []string) string {
	list := ""
	for i, name := range itemNames {
		if i > 0 {
			list += ", "
		}
		list += name
	}
	return fmt.Sprintf(
		"Hello %s, this is %s. We are running low on the following items and would like to place an order: %s.",
		supplierName, businessName, list,
	)
}

// DormantCustomer composes the re-engagement message sent to customers who
// have not visited recently
func DormantCustomer(customerName, businessName string) string {
	return fmt.Sprintf(
		"Hi %s, we miss you at %s! Come back and visit us soon - your loyalty points are waiting.",
		customerName, businessName,
	)
}

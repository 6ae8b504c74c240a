package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentConfirmation(t *testing.T) {
	msg := AppointmentConfirmation("Carla", "Salao da Ana", "2026-09-01", "10:00")
	assert.Contains(t, msg, "Carla")
	assert.Contains(t, msg, "Salao da Ana")
	assert.Contains(t, msg, "2026-09-01")
	assert.Contains(t, msg, "10:00")
}

func TestLowStockSupplierListsItems(t *testing.T) {
	msg := LowStockSupplier("Distribuidora Norte", "Salao da Ana", []string{"Beer", "Shampoo"})
	assert.Contains(t, msg, "Distribuidora Norte")
	assert.Contains(t, msg, "Beer, Shampoo")

	single := LowStockSupplier("Distribuidora Norte", "Salao da Ana", []string{"Beer"})
	assert.Contains(t, single, "Beer.")
}

func TestDormantCustomer(t *testing.T) {
	msg := DormantCustomer("Carla", "Salao da Ana")
	assert.Contains(t, msg, "Carla")
	assert.Contains(t, msg, "Salao da Ana")
}

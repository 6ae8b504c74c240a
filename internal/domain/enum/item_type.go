package enum

// ItemType distinguishes physical stock from bookable services
type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

// IsValid checks if the item type is a known value
func (t ItemType) IsValid() bool {
	return t == ItemProduct || t == ItemService
}

package models

import "time"

// Status is the lifecycle state of a group order.
// The string values are the exact labels exchanged with clients.
type Status string

const (
	// StatusOpen accepts line item changes.
	StatusOpen Status = "開放中"
	// StatusClosed is reached at the deadline or by explicit action.
	StatusClosed Status = "已截止"
	// StatusFinalized is set once the order has been placed with the shop.
	StatusFinalized Status = "已結單"
)

// GroupOrder is a single collective order against one shop.
type GroupOrder struct {
	// ID is the unique identifier for the group order (UUID format).
	ID string

	// ShopID references the shop being ordered from.
	ShopID string

	// CreatorName is the display name of whoever opened the order.
	CreatorName string

	// Title is an optional label (e.g., "週五下午茶"). Empty means no title.
	Title string

	// Deadline is when the order stops accepting changes.
	Deadline time.Time

	// Status is the current lifecycle state.
	Status Status

	// CreatedAt is when the group order was created.
	CreatedAt time.Time
}

// AcceptsChanges reports whether line items may be added or edited.
func (o *GroupOrder) AcceptsChanges() bool {
	return o.Status == StatusOpen
}

// LineItem is one participant's drink selection within a group order.
type LineItem struct {
	// ID is the unique identifier for the line item (UUID format).
	ID string

	// GroupOrderID is the owning group order.
	GroupOrderID string

	// MenuItemID references the ordered drink.
	MenuItemID string

	// MenuItemName is the drink name, joined in on reads.
	MenuItemName string

	// PersonName is who the drink is for. Grouping uses exact string equality.
	PersonName string

	// Size is one of the catalog's size labels.
	Size string

	// SweetLevel is one of the catalog's sweetness labels.
	SweetLevel string

	// IceLevel is one of the catalog's ice labels.
	IceLevel string

	// Toppings is the ordered list of topping names. Duplicates are allowed
	// and each occurrence is priced.
	Toppings []string

	// Quantity is the number of cups (positive).
	Quantity int

	// Note is optional free text. Empty means no note.
	Note string

	// Subtotal is (base price + toppings) * quantity, computed when the item
	// is created or edited.
	Subtotal int64

	// CreatedAt is when the line item was created.
	CreatedAt time.Time
}

package models

import "time"

// Shop is a drink shop that group orders can be placed against.
type Shop struct {
	// ID is the unique identifier for the shop (UUID format).
	ID string

	// Name is the display name of the shop (e.g., "五十嵐").
	Name string

	// IsActive controls whether the shop is offered for new group orders.
	IsActive bool

	// SortOrder orders shops in listings (ascending).
	SortOrder int

	// MenuItemCount is the number of active menu items.
	// Populated by list queries only.
	MenuItemCount int

	// CreatedAt is when the shop was created.
	CreatedAt time.Time
}

// MenuItem is a drink on a shop's menu.
// Menu items are referenced, not owned, by line items.
type MenuItem struct {
	// ID is the unique identifier for the menu item (UUID format).
	ID string

	// ShopID is the shop this item belongs to.
	ShopID string

	// Name is the drink name (e.g., "珍珠奶茶").
	Name string

	// Category groups items on the menu (e.g., "奶茶類").
	Category string

	// PriceMedium is the base price of the medium size.
	PriceMedium int64

	// PriceLarge is the base price of the large size.
	PriceLarge int64

	// IsActive controls whether the item is shown on the menu.
	IsActive bool

	// SortOrder orders items within the menu (ascending).
	SortOrder int
}

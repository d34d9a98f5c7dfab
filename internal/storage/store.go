// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/drinkorder/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for drink order storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	ShopStore
	GroupOrderStore
	LineItemStore
	DocumentStore

	// Close releases any resources held by the store.
	Close() error
}

// ShopStore persists shops and their menus.
type ShopStore interface {
	// CreateShop persists a new shop. ID and CreatedAt are generated when empty.
	CreateShop(ctx context.Context, shop *models.Shop) error

	// GetShop retrieves a shop by ID. Returns ErrNotFound if absent.
	GetShop(ctx context.Context, shopID string) (*models.Shop, error)

	// ListShops returns shops ordered by sort order, with MenuItemCount set.
	ListShops(ctx context.Context, activeOnly bool) ([]models.Shop, error)

	// CreateMenuItem persists a new menu item. ID is generated when empty.
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error

	// GetMenuItem retrieves a menu item by ID. Returns ErrNotFound if absent.
	GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error)

	// ListMenuItems returns a shop's menu ordered by sort order.
	ListMenuItems(ctx context.Context, shopID string, activeOnly bool) ([]models.MenuItem, error)
}

// GroupOrderStore persists group orders.
type GroupOrderStore interface {
	// CreateGroupOrder persists a new group order. ID and CreatedAt are
	// generated when empty.
	CreateGroupOrder(ctx context.Context, order *models.GroupOrder) error

	// GetGroupOrder retrieves a group order by ID. Returns ErrNotFound if absent.
	GetGroupOrder(ctx context.Context, orderID string) (*models.GroupOrder, error)

	// ListGroupOrders returns group orders newest first.
	ListGroupOrders(ctx context.Context) ([]models.GroupOrder, error)

	// UpdateGroupOrderStatus sets the status of a group order.
	// Returns ErrNotFound if absent.
	UpdateGroupOrderStatus(ctx context.Context, orderID string, status models.Status) error

	// DeleteGroupOrder removes a group order and all of its line items.
	// Returns ErrNotFound if absent.
	DeleteGroupOrder(ctx context.Context, orderID string) error
}

// LineItemStore persists line items.
type LineItemStore interface {
	// CreateLineItem persists a new line item. ID and CreatedAt are generated
	// when empty.
	CreateLineItem(ctx context.Context, item *models.LineItem) error

	// GetLineItem retrieves a line item by ID. Returns ErrNotFound if absent.
	GetLineItem(ctx context.Context, itemID string) (*models.LineItem, error)

	// UpdateLineItem replaces the mutable fields of a line item in place.
	// Returns ErrNotFound if absent.
	UpdateLineItem(ctx context.Context, item *models.LineItem) error

	// DeleteLineItem removes a line item. Returns ErrNotFound if absent.
	DeleteLineItem(ctx context.Context, itemID string) error

	// ListLineItems returns a group order's line items in insertion order.
	ListLineItems(ctx context.Context, orderID string) ([]models.LineItem, error)
}

// DocumentStore persists whole JSON documents by key.
type DocumentStore interface {
	// GetDocument returns the stored document. Returns ErrNotFound if none
	// has been saved under key.
	GetDocument(ctx context.Context, key string) ([]byte, error)

	// PutDocument replaces the document stored under key.
	PutDocument(ctx context.Context, key string, data []byte) error
}

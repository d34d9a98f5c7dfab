package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mmynk/drinkorder/internal/models"
)

const lineItemSelect = `
	SELECT oi.id, oi.group_order_id, oi.menu_item_id, COALESCE(m.name, ''), oi.person_name,
	       oi.size, oi.sweet_level, oi.ice_level, oi.toppings, oi.quantity, oi.note,
	       oi.subtotal, oi.created_at
	FROM order_items oi
	LEFT JOIN menu_items m ON m.id = oi.menu_item_id`

// CreateLineItem persists a new line item.
func (s *PostgresStore) CreateLineItem(ctx context.Context, item *models.LineItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO order_items (id, group_order_id, menu_item_id, person_name, size, sweet_level,
		                          ice_level, toppings, quantity, note, subtotal, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.GroupOrderID, item.MenuItemID, item.PersonName, item.Size, item.SweetLevel,
		item.IceLevel, toppingsArray(item.Toppings), item.Quantity, nullString(item.Note),
		item.Subtotal, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}
	return nil
}

// GetLineItem retrieves a line item by ID.
func (s *PostgresStore) GetLineItem(ctx context.Context, itemID string) (*models.LineItem, error) {
	item, err := scanLineItem(s.pool.QueryRow(ctx, lineItemSelect+" WHERE oi.id = $1", itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("order item", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order item: %w", err)
	}
	return item, nil
}

// UpdateLineItem replaces every mutable field of a line item.
func (s *PostgresStore) UpdateLineItem(ctx context.Context, item *models.LineItem) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE order_items
		 SET menu_item_id = $1, person_name = $2, size = $3, sweet_level = $4, ice_level = $5,
		     toppings = $6, quantity = $7, note = $8, subtotal = $9
		 WHERE id = $10`,
		item.MenuItemID, item.PersonName, item.Size, item.SweetLevel, item.IceLevel,
		toppingsArray(item.Toppings), item.Quantity, nullString(item.Note), item.Subtotal, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	return requireAffected(tag, "order item", item.ID)
}

// DeleteLineItem removes a line item.
func (s *PostgresStore) DeleteLineItem(ctx context.Context, itemID string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM order_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	return requireAffected(tag, "order item", itemID)
}

// ListLineItems returns a group order's line items in insertion order.
func (s *PostgresStore) ListLineItems(ctx context.Context, orderID string) ([]models.LineItem, error) {
	rows, err := s.pool.Query(ctx, lineItemSelect+" WHERE oi.group_order_id = $1 ORDER BY oi.seq", orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}
	return items, nil
}

func scanLineItem(row rowScanner) (*models.LineItem, error) {
	item := &models.LineItem{}
	var note *string
	err := row.Scan(&item.ID, &item.GroupOrderID, &item.MenuItemID, &item.MenuItemName, &item.PersonName,
		&item.Size, &item.SweetLevel, &item.IceLevel, &item.Toppings, &item.Quantity, &note,
		&item.Subtotal, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if item.Toppings == nil {
		item.Toppings = []string{}
	}
	if note != nil {
		item.Note = *note
	}
	item.CreatedAt = item.CreatedAt.Local()
	return item, nil
}

// toppingsArray keeps the NOT NULL toppings column populated.
func toppingsArray(toppings []string) []string {
	if toppings == nil {
		return []string{}
	}
	return toppings
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/drinkorder/internal/models"
)

// lineItemSelect joins the menu item name so reads need no second query.
const lineItemSelect = `
	SELECT oi.id, oi.group_order_id, oi.menu_item_id, COALESCE(m.name, ''), oi.person_name,
	       oi.size, oi.sweet_level, oi.ice_level, oi.toppings, oi.quantity, oi.note,
	       oi.subtotal, oi.created_at
	FROM order_items oi
	LEFT JOIN menu_items m ON m.id = oi.menu_item_id`

// CreateLineItem persists a new line item.
func (s *SQLiteStore) CreateLineItem(ctx context.Context, item *models.LineItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	toppings, err := encodeToppings(item.Toppings)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO order_items (id, group_order_id, menu_item_id, person_name, size, sweet_level,
		                          ice_level, toppings, quantity, note, subtotal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.GroupOrderID, item.MenuItemID, item.PersonName, item.Size, item.SweetLevel,
		item.IceLevel, toppings, item.Quantity, nullString(item.Note), item.Subtotal, item.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}
	return nil
}

// GetLineItem retrieves a line item by ID.
func (s *SQLiteStore) GetLineItem(ctx context.Context, itemID string) (*models.LineItem, error) {
	row := s.db.QueryRowContext(ctx, lineItemSelect+" WHERE oi.id = ?", itemID)
	item, err := scanLineItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("order item", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order item: %w", err)
	}
	return item, nil
}

// UpdateLineItem replaces every mutable field of a line item.
func (s *SQLiteStore) UpdateLineItem(ctx context.Context, item *models.LineItem) error {
	toppings, err := encodeToppings(item.Toppings)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE order_items
		 SET menu_item_id = ?, person_name = ?, size = ?, sweet_level = ?, ice_level = ?,
		     toppings = ?, quantity = ?, note = ?, subtotal = ?
		 WHERE id = ?`,
		item.MenuItemID, item.PersonName, item.Size, item.SweetLevel, item.IceLevel,
		toppings, item.Quantity, nullString(item.Note), item.Subtotal, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}
	return requireAffected(result, "order item", item.ID)
}

// DeleteLineItem removes a line item.
func (s *SQLiteStore) DeleteLineItem(ctx context.Context, itemID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM order_items WHERE id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	return requireAffected(result, "order item", itemID)
}

// ListLineItems returns a group order's line items in insertion order.
func (s *SQLiteStore) ListLineItems(ctx context.Context, orderID string) ([]models.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, lineItemSelect+" WHERE oi.group_order_id = ? ORDER BY oi.seq", orderID)
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
	var toppings string
	var note sql.NullString
	var createdAt int64
	err := row.Scan(&item.ID, &item.GroupOrderID, &item.MenuItemID, &item.MenuItemName, &item.PersonName,
		&item.Size, &item.SweetLevel, &item.IceLevel, &toppings, &item.Quantity, &note,
		&item.Subtotal, &createdAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(toppings), &item.Toppings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal toppings: %w", err)
	}
	if note.Valid {
		item.Note = note.String
	}
	item.CreatedAt = fromUnix(createdAt)
	return item, nil
}

func encodeToppings(toppings []string) (string, error) {
	if toppings == nil {
		toppings = []string{}
	}
	data, err := json.Marshal(toppings)
	if err != nil {
		return "", fmt.Errorf("failed to marshal toppings: %w", err)
	}
	return string(data), nil
}

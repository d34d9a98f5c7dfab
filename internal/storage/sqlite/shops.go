package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/drinkorder/internal/models"
)

// CreateShop persists a new shop to the database.
func (s *SQLiteStore) CreateShop(ctx context.Context, shop *models.Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO shops (id, name, is_active, sort_order, created_at) VALUES (?, ?, ?, ?, ?)",
		shop.ID, shop.Name, boolInt(shop.IsActive), shop.SortOrder, shop.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert shop: %w", err)
	}
	return nil
}

// GetShop retrieves a shop by ID.
func (s *SQLiteStore) GetShop(ctx context.Context, shopID string) (*models.Shop, error) {
	shop := &models.Shop{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, is_active, sort_order, created_at FROM shops WHERE id = ?",
		shopID,
	).Scan(&shop.ID, &shop.Name, &shop.IsActive, &shop.SortOrder, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("shop", shopID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	shop.CreatedAt = fromUnix(createdAt)
	return shop, nil
}

// ListShops returns shops ordered by sort order, each with its active menu item count.
func (s *SQLiteStore) ListShops(ctx context.Context, activeOnly bool) ([]models.Shop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.is_active, s.sort_order, s.created_at,
		       (SELECT COUNT(*) FROM menu_items m WHERE m.shop_id = s.id AND m.is_active = 1)
		FROM shops s
		WHERE (? = 0 OR s.is_active = 1)
		ORDER BY s.sort_order, s.name`,
		boolInt(activeOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	var shops []models.Shop
	for rows.Next() {
		var shop models.Shop
		var createdAt int64
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.IsActive, &shop.SortOrder, &createdAt, &shop.MenuItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shop.CreatedAt = fromUnix(createdAt)
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shops: %w", err)
	}
	return shops, nil
}

// CreateMenuItem persists a new menu item.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO menu_items (id, shop_id, name, category, price_medium, price_large, is_active, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ShopID, item.Name, item.Category, item.PriceMedium, item.PriceLarge,
		boolInt(item.IsActive), item.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, shop_id, name, category, price_medium, price_large, is_active, sort_order
		 FROM menu_items WHERE id = ?`,
		itemID,
	).Scan(&item.ID, &item.ShopID, &item.Name, &item.Category, &item.PriceMedium, &item.PriceLarge,
		&item.IsActive, &item.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("menu item", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// ListMenuItems returns a shop's menu ordered by sort order.
func (s *SQLiteStore) ListMenuItems(ctx context.Context, shopID string, activeOnly bool) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, shop_id, name, category, price_medium, price_large, is_active, sort_order
		FROM menu_items
		WHERE shop_id = ? AND (? = 0 OR is_active = 1)
		ORDER BY sort_order, name`,
		shopID, boolInt(activeOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.ShopID, &item.Name, &item.Category, &item.PriceMedium,
			&item.PriceLarge, &item.IsActive, &item.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

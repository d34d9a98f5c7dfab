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

// CreateShop persists a new shop.
func (s *PostgresStore) CreateShop(ctx context.Context, shop *models.Shop) error {
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now()
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO shops (id, name, is_active, sort_order, created_at) VALUES ($1, $2, $3, $4, $5)",
		shop.ID, shop.Name, shop.IsActive, shop.SortOrder, shop.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shop: %w", err)
	}
	return nil
}

// GetShop retrieves a shop by ID.
func (s *PostgresStore) GetShop(ctx context.Context, shopID string) (*models.Shop, error) {
	shop := &models.Shop{}
	err := s.pool.QueryRow(ctx,
		"SELECT id, name, is_active, sort_order, created_at FROM shops WHERE id = $1",
		shopID,
	).Scan(&shop.ID, &shop.Name, &shop.IsActive, &shop.SortOrder, &shop.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("shop", shopID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return shop, nil
}

// ListShops returns shops ordered by sort order with active menu item counts.
func (s *PostgresStore) ListShops(ctx context.Context, activeOnly bool) ([]models.Shop, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT s.id, s.name, s.is_active, s.sort_order, s.created_at,
		       (SELECT COUNT(*) FROM menu_items m WHERE m.shop_id = s.id AND m.is_active)
		FROM shops s
		WHERE (NOT $1 OR s.is_active)
		ORDER BY s.sort_order, s.name`,
		activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	var shops []models.Shop
	for rows.Next() {
		var shop models.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.IsActive, &shop.SortOrder, &shop.CreatedAt, &shop.MenuItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

// CreateMenuItem persists a new menu item.
func (s *PostgresStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO menu_items (id, shop_id, name, category, price_medium, price_large, is_active, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.ShopID, item.Name, item.Category, item.PriceMedium, item.PriceLarge,
		item.IsActive, item.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (s *PostgresStore) GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, shop_id, name, category, price_medium, price_large, is_active, sort_order
		 FROM menu_items WHERE id = $1`,
		itemID,
	).Scan(&item.ID, &item.ShopID, &item.Name, &item.Category, &item.PriceMedium, &item.PriceLarge,
		&item.IsActive, &item.SortOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("menu item", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// ListMenuItems returns a shop's menu ordered by sort order.
func (s *PostgresStore) ListMenuItems(ctx context.Context, shopID string, activeOnly bool) ([]models.MenuItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, shop_id, name, category, price_medium, price_large, is_active, sort_order
		FROM menu_items
		WHERE shop_id = $1 AND (NOT $2 OR is_active)
		ORDER BY sort_order, name`,
		shopID, activeOnly,
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
	return items, rows.Err()
}

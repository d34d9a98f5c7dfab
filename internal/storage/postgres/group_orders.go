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

const groupOrderColumns = "id, shop_id, creator_name, title, deadline, status, created_at"

// CreateGroupOrder persists a new group order.
func (s *PostgresStore) CreateGroupOrder(ctx context.Context, order *models.GroupOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO group_orders ("+groupOrderColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		order.ID, order.ShopID, order.CreatorName, nullString(order.Title),
		order.Deadline, string(order.Status), order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group order: %w", err)
	}
	return nil
}

// GetGroupOrder retrieves a group order by ID.
func (s *PostgresStore) GetGroupOrder(ctx context.Context, orderID string) (*models.GroupOrder, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+groupOrderColumns+" FROM group_orders WHERE id = $1", orderID)
	order, err := scanGroupOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("group order", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group order: %w", err)
	}
	return order, nil
}

// ListGroupOrders returns all group orders, newest first.
func (s *PostgresStore) ListGroupOrders(ctx context.Context) ([]models.GroupOrder, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+groupOrderColumns+" FROM group_orders ORDER BY created_at DESC, seq DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group orders: %w", err)
	}
	defer rows.Close()

	var orders []models.GroupOrder
	for rows.Next() {
		order, err := scanGroupOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group orders: %w", err)
	}
	return orders, nil
}

// UpdateGroupOrderStatus sets the status of a group order.
func (s *PostgresStore) UpdateGroupOrderStatus(ctx context.Context, orderID string, status models.Status) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE group_orders SET status = $1 WHERE id = $2",
		string(status), orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group order status: %w", err)
	}
	return requireAffected(tag, "group order", orderID)
}

// DeleteGroupOrder removes a group order. Line items go with it via ON DELETE CASCADE.
func (s *PostgresStore) DeleteGroupOrder(ctx context.Context, orderID string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM group_orders WHERE id = $1", orderID)
	if err != nil {
		return fmt.Errorf("failed to delete group order: %w", err)
	}
	return requireAffected(tag, "group order", orderID)
}

func scanGroupOrder(row rowScanner) (*models.GroupOrder, error) {
	order := &models.GroupOrder{}
	var title *string
	var status string
	if err := row.Scan(&order.ID, &order.ShopID, &order.CreatorName, &title,
		&order.Deadline, &status, &order.CreatedAt); err != nil {
		return nil, err
	}
	if title != nil {
		order.Title = *title
	}
	order.Status = models.Status(status)
	order.Deadline = order.Deadline.Local()
	order.CreatedAt = order.CreatedAt.Local()
	return order, nil
}

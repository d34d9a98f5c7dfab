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

const groupOrderColumns = "id, shop_id, creator_name, title, deadline, status, created_at"

// CreateGroupOrder persists a new group order to the database.
func (s *SQLiteStore) CreateGroupOrder(ctx context.Context, order *models.GroupOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO group_orders ("+groupOrderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		order.ID, order.ShopID, order.CreatorName, nullString(order.Title),
		order.Deadline.Unix(), string(order.Status), order.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert group order: %w", err)
	}
	return nil
}

// GetGroupOrder retrieves a group order by ID. Line items are loaded separately.
func (s *SQLiteStore) GetGroupOrder(ctx context.Context, orderID string) (*models.GroupOrder, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+groupOrderColumns+" FROM group_orders WHERE id = ?",
		orderID,
	)
	order, err := scanGroupOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("group order", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group order: %w", err)
	}
	return order, nil
}

// ListGroupOrders returns all group orders, newest first.
func (s *SQLiteStore) ListGroupOrders(ctx context.Context) ([]models.GroupOrder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+groupOrderColumns+" FROM group_orders ORDER BY created_at DESC, rowid DESC",
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
func (s *SQLiteStore) UpdateGroupOrderStatus(ctx context.Context, orderID string, status models.Status) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE group_orders SET status = ? WHERE id = ?",
		string(status), orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group order status: %w", err)
	}
	return requireAffected(result, "group order", orderID)
}

// DeleteGroupOrder removes a group order and its line items in one transaction.
func (s *SQLiteStore) DeleteGroupOrder(ctx context.Context, orderID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE group_order_id = ?", orderID); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM group_orders WHERE id = ?", orderID)
	if err != nil {
		return fmt.Errorf("failed to delete group order: %w", err)
	}
	if err := requireAffected(result, "group order", orderID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroupOrder(row rowScanner) (*models.GroupOrder, error) {
	order := &models.GroupOrder{}
	var title sql.NullString
	var status string
	var deadline, createdAt int64
	if err := row.Scan(&order.ID, &order.ShopID, &order.CreatorName, &title, &deadline, &status, &createdAt); err != nil {
		return nil, err
	}
	if title.Valid {
		order.Title = title.String
	}
	order.Status = models.Status(status)
	order.Deadline = fromUnix(deadline)
	order.CreatedAt = fromUnix(createdAt)
	return order, nil
}

// requireAffected turns a zero-row update or delete into a not-found error.
func requireAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

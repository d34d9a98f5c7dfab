package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/docstore"
	"github.com/mmynk/drinkorder/internal/lifecycle"
	"github.com/mmynk/drinkorder/internal/metrics"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage"
	"github.com/mmynk/drinkorder/pkg/api"
	"github.com/mmynk/drinkorder/pkg/api/apiconnect"
)

// GroupOrderService implements the Connect GroupOrderService.
type GroupOrderService struct {
	apiconnect.UnimplementedGroupOrderServiceHandler
	store       storage.Store
	catalog     *docstore.Store[models.Catalog]
	now         func() time.Time
	lockRemoval bool
	policy      lifecycle.Policy
}

// Option configures a GroupOrderService.
type Option func(*GroupOrderService)

// WithClock overrides the time source used for expiry and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *GroupOrderService) { s.now = now }
}

// WithLockedRemoval makes RemoveOrderItem apply the same open-order guard
// as add and edit.
func WithLockedRemoval(lock bool) Option {
	return func(s *GroupOrderService) { s.lockRemoval = lock }
}

// WithReopen controls whether a closed or finalized order may be set back
// to open.
func WithReopen(allow bool) Option {
	return func(s *GroupOrderService) { s.policy.AllowReopen = allow }
}

// NewGroupOrderService creates a new GroupOrderService with the given storage backend.
func NewGroupOrderService(store storage.Store, opts ...Option) *GroupOrderService {
	s := &GroupOrderService{
		store:   store,
		catalog: docstore.New(store, docstore.KeyDrinkOptions, models.DefaultCatalog),
		now:     time.Now,
		policy:  lifecycle.DefaultPolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGroupOrder opens a new group order against a shop.
func (s *GroupOrderService) CreateGroupOrder(ctx context.Context, req *connect.Request[api.CreateGroupOrderRequest]) (*connect.Response[api.CreateGroupOrderResponse], error) {
	slog.Info("CreateGroupOrder request received",
		"shop_id", req.Msg.ShopID,
		"creator", req.Msg.CreatorName,
		"deadline", req.Msg.Deadline,
	)

	creator := strings.TrimSpace(req.Msg.CreatorName)
	if creator == "" {
		return nil, connectError(invalidInput("creator name required"))
	}
	deadline, err := parseDeadline(req.Msg.Deadline)
	if err != nil {
		return nil, connectError(err)
	}

	shop, err := s.store.GetShop(ctx, req.Msg.ShopID)
	if err != nil {
		slog.Error("CreateGroupOrder failed - shop lookup", "shop_id", req.Msg.ShopID, "error", err)
		return nil, connectError(err)
	}

	order := &models.GroupOrder{
		ShopID:      shop.ID,
		CreatorName: creator,
		Title:       strings.TrimSpace(req.Msg.Title),
		Deadline:    deadline,
		Status:      models.StatusOpen,
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateGroupOrder(ctx, order); err != nil {
		slog.Error("CreateGroupOrder failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group order created", "group_order_id", order.ID, "shop", shop.Name)

	return connect.NewResponse(&api.CreateGroupOrderResponse{
		Order: toGroupOrderDetail(order, shop.Name, nil),
	}), nil
}

// GetGroupOrder returns a group order with its per-person summary.
func (s *GroupOrderService) GetGroupOrder(ctx context.Context, req *connect.Request[api.GetGroupOrderRequest]) (*connect.Response[api.GetGroupOrderResponse], error) {
	slog.Info("GetGroupOrder request received", "group_order_id", req.Msg.ID)

	order, err := s.loadOrder(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetGroupOrder failed", "group_order_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	detail, err := s.orderDetail(ctx, order)
	if err != nil {
		slog.Error("GetGroupOrder failed - detail", "group_order_id", order.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("GetGroupOrder successful",
		"group_order_id", order.ID,
		"status", order.Status,
		"participants", detail.Summary.TotalParticipants,
	)

	return connect.NewResponse(&api.GetGroupOrderResponse{Order: detail}), nil
}

// ListGroupOrders returns group orders newest first, optionally filtered by status.
// The filter applies to the status after expiry is reconciled.
func (s *GroupOrderService) ListGroupOrders(ctx context.Context, req *connect.Request[api.ListGroupOrdersRequest]) (*connect.Response[api.ListGroupOrdersResponse], error) {
	slog.Info("ListGroupOrders request received", "status", req.Msg.Status)

	orders, err := s.store.ListGroupOrders(ctx)
	if err != nil {
		slog.Error("ListGroupOrders failed", "error", err)
		return nil, connectError(err)
	}

	shopNames := make(map[string]string)
	rows := make([]api.GroupOrderListItem, 0, len(orders))
	for _, order := range orders {
		order, err := s.reconcile(ctx, order)
		if err != nil {
			slog.Error("ListGroupOrders failed - expiry", "group_order_id", order.ID, "error", err)
			return nil, connectError(err)
		}
		if req.Msg.Status != "" && string(order.Status) != req.Msg.Status {
			continue
		}

		name, ok := shopNames[order.ShopID]
		if !ok {
			name, err = s.shopName(ctx, order.ShopID)
			if err != nil {
				return nil, connectError(err)
			}
			shopNames[order.ShopID] = name
		}

		items, err := s.store.ListLineItems(ctx, order.ID)
		if err != nil {
			slog.Error("ListGroupOrders failed - line items", "group_order_id", order.ID, "error", err)
			return nil, connectError(err)
		}
		rows = append(rows, toGroupOrderListItem(order, name, items))
	}

	slog.Info("ListGroupOrders successful", "count", len(rows))

	return connect.NewResponse(&api.ListGroupOrdersResponse{Orders: rows}), nil
}

// UpdateGroupOrderStatus explicitly moves a group order to another status.
func (s *GroupOrderService) UpdateGroupOrderStatus(ctx context.Context, req *connect.Request[api.UpdateGroupOrderStatusRequest]) (*connect.Response[api.UpdateGroupOrderStatusResponse], error) {
	slog.Info("UpdateGroupOrderStatus request received",
		"group_order_id", req.Msg.ID,
		"status", req.Msg.Status,
	)

	target, err := lifecycle.ParseStatus(req.Msg.Status)
	if err != nil {
		return nil, connectError(err)
	}

	order, err := s.store.GetGroupOrder(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("UpdateGroupOrderStatus failed", "group_order_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	if !s.policy.CanTransition(order.Status, target) {
		slog.Warn("UpdateGroupOrderStatus rejected", "group_order_id", order.ID, "from", order.Status, "to", target)
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("status transition from %s to %s not allowed", order.Status, target))
	}

	if err := s.store.UpdateGroupOrderStatus(ctx, order.ID, target); err != nil {
		slog.Error("UpdateGroupOrderStatus failed", "group_order_id", order.ID, "error", err)
		return nil, connectError(err)
	}
	from := order.Status
	order.Status = target
	metrics.GroupOrderTransitions.WithLabelValues(string(target)).Inc()

	slog.Info("Group order status updated", "group_order_id", order.ID, "from", from, "to", target)

	detail, err := s.orderDetail(ctx, order)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.UpdateGroupOrderStatusResponse{Order: detail}), nil
}

// DeleteGroupOrder removes a group order and all of its line items.
func (s *GroupOrderService) DeleteGroupOrder(ctx context.Context, req *connect.Request[api.DeleteGroupOrderRequest]) (*connect.Response[api.DeleteGroupOrderResponse], error) {
	slog.Info("DeleteGroupOrder request received", "group_order_id", req.Msg.ID)

	if err := s.store.DeleteGroupOrder(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteGroupOrder failed", "group_order_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Group order deleted", "group_order_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteGroupOrderResponse{}), nil
}

// loadOrder fetches a group order and reconciles its expiry.
func (s *GroupOrderService) loadOrder(ctx context.Context, id string) (*models.GroupOrder, error) {
	order, err := s.store.GetGroupOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	reconciled, err := s.reconcile(ctx, *order)
	if err != nil {
		return nil, err
	}
	return &reconciled, nil
}

// reconcile closes an expired open order and persists the change.
func (s *GroupOrderService) reconcile(ctx context.Context, order models.GroupOrder) (models.GroupOrder, error) {
	order, changed := lifecycle.ReconcileExpiry(order, s.now())
	if !changed {
		return order, nil
	}
	if err := s.store.UpdateGroupOrderStatus(ctx, order.ID, order.Status); err != nil {
		return order, err
	}
	metrics.GroupOrdersExpired.Inc()
	slog.Info("Group order expired", "group_order_id", order.ID, "deadline", formatTime(order.Deadline))
	return order, nil
}

func (s *GroupOrderService) orderDetail(ctx context.Context, order *models.GroupOrder) (*api.GroupOrderDetail, error) {
	name, err := s.shopName(ctx, order.ShopID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListLineItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return toGroupOrderDetail(order, name, items), nil
}

func (s *GroupOrderService) shopName(ctx context.Context, shopID string) (string, error) {
	shop, err := s.store.GetShop(ctx, shopID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return shop.Name, nil
}

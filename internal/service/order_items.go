package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/calculator"
	"github.com/mmynk/drinkorder/internal/lifecycle"
	"github.com/mmynk/drinkorder/internal/metrics"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage"
	"github.com/mmynk/drinkorder/pkg/api"
)

// maxQuantity bounds a line item's quantity to the storage column width.
const maxQuantity = math.MaxInt32

// itemInput holds the caller-supplied fields shared by add and edit.
type itemInput struct {
	MenuItemID string
	PersonName string
	Size       string
	SweetLevel string
	IceLevel   string
	Toppings   []string
	Quantity   int
	Note       string
}

// normalize trims free-text fields and applies the quantity default.
func (in *itemInput) normalize() error {
	in.PersonName = strings.TrimSpace(in.PersonName)
	in.Note = strings.TrimSpace(in.Note)
	if in.PersonName == "" {
		return invalidInput("person name required")
	}
	if in.MenuItemID == "" {
		return invalidInput("menu item required")
	}
	switch {
	case in.Quantity < 0:
		return invalidInput("quantity must be positive, got %d", in.Quantity)
	case in.Quantity > maxQuantity:
		return invalidInput("quantity must be at most %d, got %d", maxQuantity, in.Quantity)
	case in.Quantity == 0:
		in.Quantity = 1
	}
	if in.Toppings == nil {
		in.Toppings = []string{}
	}
	return nil
}

// AddOrderItem adds one participant's drink to an open group order.
func (s *GroupOrderService) AddOrderItem(ctx context.Context, req *connect.Request[api.AddOrderItemRequest]) (*connect.Response[api.AddOrderItemResponse], error) {
	slog.Info("AddOrderItem request received",
		"group_order_id", req.Msg.GroupOrderID,
		"menu_item_id", req.Msg.MenuItemID,
		"person", req.Msg.PersonName,
		"size", req.Msg.Size,
		"toppings_count", len(req.Msg.Toppings),
	)

	order, err := s.loadOrder(ctx, req.Msg.GroupOrderID)
	if err != nil {
		slog.Error("AddOrderItem failed - group order lookup", "group_order_id", req.Msg.GroupOrderID, "error", err)
		return nil, connectError(err)
	}
	if err := lifecycle.EnsureAcceptingChanges(order); err != nil {
		slog.Warn("AddOrderItem rejected", "group_order_id", order.ID, "status", order.Status)
		return nil, connectError(err)
	}

	in := itemInput{
		MenuItemID: req.Msg.MenuItemID,
		PersonName: req.Msg.PersonName,
		Size:       req.Msg.Size,
		SweetLevel: req.Msg.SweetLevel,
		IceLevel:   req.Msg.IceLevel,
		Toppings:   req.Msg.Toppings,
		Quantity:   req.Msg.Quantity,
		Note:       req.Msg.Note,
	}
	item := &models.LineItem{GroupOrderID: order.ID, CreatedAt: s.now()}
	if err := s.applyInput(ctx, order, item, in); err != nil {
		slog.Error("AddOrderItem failed", "group_order_id", order.ID, "error", err)
		return nil, connectError(err)
	}

	if err := s.store.CreateLineItem(ctx, item); err != nil {
		slog.Error("AddOrderItem failed - insert", "group_order_id", order.ID, "error", err)
		return nil, connectError(err)
	}
	metrics.LineItemMutations.WithLabelValues(metrics.OpAdd).Inc()

	slog.Info("Order item added",
		"group_order_id", order.ID,
		"item_id", item.ID,
		"person", item.PersonName,
		"subtotal", item.Subtotal,
	)

	detail := toOrderItemDetail(*item)
	return connect.NewResponse(&api.AddOrderItemResponse{Item: &detail}), nil
}

// UpdateOrderItem replaces every mutable field of a line item and reprices it.
func (s *GroupOrderService) UpdateOrderItem(ctx context.Context, req *connect.Request[api.UpdateOrderItemRequest]) (*connect.Response[api.UpdateOrderItemResponse], error) {
	slog.Info("UpdateOrderItem request received",
		"group_order_id", req.Msg.GroupOrderID,
		"item_id", req.Msg.ItemID,
		"menu_item_id", req.Msg.MenuItemID,
		"person", req.Msg.PersonName,
	)

	order, err := s.loadOrder(ctx, req.Msg.GroupOrderID)
	if err != nil {
		slog.Error("UpdateOrderItem failed - group order lookup", "group_order_id", req.Msg.GroupOrderID, "error", err)
		return nil, connectError(err)
	}
	if err := lifecycle.EnsureAcceptingChanges(order); err != nil {
		slog.Warn("UpdateOrderItem rejected", "group_order_id", order.ID, "status", order.Status)
		return nil, connectError(err)
	}

	item, err := s.orderItem(ctx, order.ID, req.Msg.ItemID)
	if err != nil {
		slog.Error("UpdateOrderItem failed - item lookup", "item_id", req.Msg.ItemID, "error", err)
		return nil, connectError(err)
	}

	in := itemInput{
		MenuItemID: req.Msg.MenuItemID,
		PersonName: req.Msg.PersonName,
		Size:       req.Msg.Size,
		SweetLevel: req.Msg.SweetLevel,
		IceLevel:   req.Msg.IceLevel,
		Toppings:   req.Msg.Toppings,
		Quantity:   req.Msg.Quantity,
		Note:       req.Msg.Note,
	}
	if err := s.applyInput(ctx, order, item, in); err != nil {
		slog.Error("UpdateOrderItem failed", "item_id", item.ID, "error", err)
		return nil, connectError(err)
	}

	if err := s.store.UpdateLineItem(ctx, item); err != nil {
		slog.Error("UpdateOrderItem failed - update", "item_id", item.ID, "error", err)
		return nil, connectError(err)
	}
	metrics.LineItemMutations.WithLabelValues(metrics.OpUpdate).Inc()

	slog.Info("Order item updated", "group_order_id", order.ID, "item_id", item.ID, "subtotal", item.Subtotal)

	detail := toOrderItemDetail(*item)
	return connect.NewResponse(&api.UpdateOrderItemResponse{Item: &detail}), nil
}

// RemoveOrderItem deletes a line item from a group order.
func (s *GroupOrderService) RemoveOrderItem(ctx context.Context, req *connect.Request[api.RemoveOrderItemRequest]) (*connect.Response[api.RemoveOrderItemResponse], error) {
	slog.Info("RemoveOrderItem request received",
		"group_order_id", req.Msg.GroupOrderID,
		"item_id", req.Msg.ItemID,
	)

	order, err := s.loadOrder(ctx, req.Msg.GroupOrderID)
	if err != nil {
		slog.Error("RemoveOrderItem failed - group order lookup", "group_order_id", req.Msg.GroupOrderID, "error", err)
		return nil, connectError(err)
	}
	if s.lockRemoval {
		if err := lifecycle.EnsureAcceptingChanges(order); err != nil {
			slog.Warn("RemoveOrderItem rejected", "group_order_id", order.ID, "status", order.Status)
			return nil, connectError(err)
		}
	}

	item, err := s.orderItem(ctx, order.ID, req.Msg.ItemID)
	if err != nil {
		slog.Error("RemoveOrderItem failed - item lookup", "item_id", req.Msg.ItemID, "error", err)
		return nil, connectError(err)
	}

	if err := s.store.DeleteLineItem(ctx, item.ID); err != nil {
		slog.Error("RemoveOrderItem failed", "item_id", item.ID, "error", err)
		return nil, connectError(err)
	}
	metrics.LineItemMutations.WithLabelValues(metrics.OpRemove).Inc()

	slog.Info("Order item removed", "group_order_id", order.ID, "item_id", item.ID, "person", item.PersonName)

	return connect.NewResponse(&api.RemoveOrderItemResponse{}), nil
}

// orderItem loads a line item and checks it belongs to the group order.
func (s *GroupOrderService) orderItem(ctx context.Context, orderID, itemID string) (*models.LineItem, error) {
	item, err := s.store.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.GroupOrderID != orderID {
		return nil, fmt.Errorf("order item %w: %s is not part of group order %s", storage.ErrNotFound, itemID, orderID)
	}
	return item, nil
}

// applyInput validates in, resolves the menu item, and writes the priced
// fields onto item.
func (s *GroupOrderService) applyInput(ctx context.Context, order *models.GroupOrder, item *models.LineItem, in itemInput) error {
	if err := in.normalize(); err != nil {
		return err
	}

	menuItem, err := s.store.GetMenuItem(ctx, in.MenuItemID)
	if err != nil {
		return err
	}
	if menuItem.ShopID != order.ShopID {
		return fmt.Errorf("menu item %w: %s is not on the menu of shop %s", storage.ErrNotFound, menuItem.ID, order.ShopID)
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load drink options: %w", err)
	}

	item.MenuItemID = menuItem.ID
	item.MenuItemName = menuItem.Name
	item.PersonName = in.PersonName
	item.Size = in.Size
	item.SweetLevel = in.SweetLevel
	item.IceLevel = in.IceLevel
	item.Toppings = in.Toppings
	item.Quantity = in.Quantity
	item.Note = in.Note
	item.Subtotal = calculator.LineSubtotal(
		calculator.BasePrices{Medium: menuItem.PriceMedium, Large: menuItem.PriceLarge},
		in.Size, in.Toppings, in.Quantity, catalog,
	)
	return nil
}

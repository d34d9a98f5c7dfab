package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/pkg/api"
)

func TestAddOrderItem_LargeWithToppings(t *testing.T) {
	env := setupTestServer(t)
	order := env.createOrder(t, time.Hour)

	item := env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["珍珠奶茶"].ID,
		PersonName:   "Alice",
		Size:         "大杯",
		SweetLevel:   "半糖",
		IceLevel:     "少冰",
		Toppings:     []string{"珍珠", "椰果"},
		Quantity:     2,
	})

	// (50 + 10 + 10) * 2
	if item.SubTotal != 140 {
		t.Errorf("subTotal: expected 140, got %d", item.SubTotal)
	}
	if item.MenuItemName != "珍珠奶茶" {
		t.Errorf("menuItemName: expected '珍珠奶茶', got '%s'", item.MenuItemName)
	}
	if item.SweetLevel != "半糖" || item.IceLevel != "少冰" {
		t.Errorf("levels: expected 半糖/少冰, got %s/%s", item.SweetLevel, item.IceLevel)
	}
}

func TestAddOrderItem_Defaults(t *testing.T) {
	env := setupTestServer(t)
	order := env.createOrder(t, time.Hour)

	tests := []struct {
		name     string
		req      *api.AddOrderItemRequest
		subtotal int64
		quantity int
	}{
		{
			name:     "zero quantity becomes one",
			req:      &api.AddOrderItemRequest{Size: "中杯"},
			subtotal: 40,
			quantity: 1,
		},
		{
			name:     "unknown size prices as medium",
			req:      &api.AddOrderItemRequest{Size: "特大杯", Quantity: 2},
			subtotal: 80,
			quantity: 2,
		},
		{
			name:     "empty size prices as medium",
			req:      &api.AddOrderItemRequest{Quantity: 1},
			subtotal: 40,
			quantity: 1,
		},
		{
			name:     "unknown topping adds nothing",
			req:      &api.AddOrderItemRequest{Size: "大杯", Toppings: []string{"黑糖", "珍珠"}, Quantity: 1},
			subtotal: 60,
			quantity: 1,
		},
		{
			name:     "duplicate toppings priced each time",
			req:      &api.AddOrderItemRequest{Size: "中杯", Toppings: []string{"奶蓋", "奶蓋"}, Quantity: 1},
			subtotal: 80,
			quantity: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.GroupOrderID = order.ID
			tt.req.MenuItemID = env.menu["珍珠奶茶"].ID
			tt.req.PersonName = "Bob"

			item := env.addItem(t, tt.req)
			if item.SubTotal != tt.subtotal {
				t.Errorf("subTotal: expected %d, got %d", tt.subtotal, item.SubTotal)
			}
			if item.Quantity != tt.quantity {
				t.Errorf("quantity: expected %d, got %d", tt.quantity, item.Quantity)
			}
		})
	}
}

func TestAddOrderItem_TrimsTextFields(t *testing.T) {
	env := setupTestServer(t)
	order := env.createOrder(t, time.Hour)

	item := env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["紅茶"].ID,
		PersonName:   "  Carol ",
		Note:         "   ",
	})
	if item.PersonName != "Carol" {
		t.Errorf("personName: expected 'Carol', got '%s'", item.PersonName)
	}
	if item.Note != nil {
		t.Errorf("note: expected none, got %q", *item.Note)
	}
	if item.Toppings == nil {
		t.Error("toppings: expected empty list, got nil")
	}
}

func TestAddOrderItem_Errors(t *testing.T) {
	env := setupTestServer(t)
	order := env.createOrder(t, time.Hour)

	tests := []struct {
		name string
		req  *api.AddOrderItemRequest
		want connect.Code
	}{
		{
			name: "unknown group order",
			req:  &api.AddOrderItemRequest{GroupOrderID: "missing", MenuItemID: env.menu["紅茶"].ID, PersonName: "Bob"},
			want: connect.CodeNotFound,
		},
		{
			name: "unknown menu item",
			req:  &api.AddOrderItemRequest{GroupOrderID: order.ID, MenuItemID: "missing", PersonName: "Bob"},
			want: connect.CodeNotFound,
		},
		{
			name: "menu item of another shop",
			req:  &api.AddOrderItemRequest{GroupOrderID: order.ID, MenuItemID: env.menu["鮮奶茶"].ID, PersonName: "Bob"},
			want: connect.CodeNotFound,
		},
		{
			name: "blank person name",
			req:  &api.AddOrderItemRequest{GroupOrderID: order.ID, MenuItemID: env.menu["紅茶"].ID, PersonName: "  "},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "negative quantity",
			req:  &api.AddOrderItemRequest{GroupOrderID: order.ID, MenuItemID: env.menu["紅茶"].ID, PersonName: "Bob", Quantity: -1},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "quantity beyond limit",
			req: &api.AddOrderItemRequest{
				GroupOrderID: order.ID,
				MenuItemID:   env.menu["珍珠奶茶"].ID,
				PersonName:   "Bob",
				Size:         "大杯",
				Quantity:     1 << 62,
			},
			want: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orders.AddOrderItem(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestAddOrderItem_RequiresOpenOrder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, env *testEnv, orderID string)
		want  connect.Code
	}{
		{
			name:  "open",
			setup: func(t *testing.T, env *testEnv, orderID string) {},
		},
		{
			name: "closed explicitly",
			setup: func(t *testing.T, env *testEnv, orderID string) {
				env.setStatus(t, orderID, models.StatusClosed)
			},
			want: connect.CodeFailedPrecondition,
		},
		{
			name: "finalized",
			setup: func(t *testing.T, env *testEnv, orderID string) {
				env.setStatus(t, orderID, models.StatusFinalized)
			},
			want: connect.CodeFailedPrecondition,
		},
		{
			name: "deadline passed",
			setup: func(t *testing.T, env *testEnv, orderID string) {
				env.clock.Advance(2 * time.Hour)
			},
			want: connect.CodeFailedPrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t)
			order := env.createOrder(t, time.Hour)
			tt.setup(t, env, order.ID)

			_, err := env.orders.AddOrderItem(context.Background(), connect.NewRequest(&api.AddOrderItemRequest{
				GroupOrderID: order.ID,
				MenuItemID:   env.menu["紅茶"].ID,
				PersonName:   "Bob",
			}))
			if tt.want == 0 {
				if err != nil {
					t.Fatalf("AddOrderItem failed: %v", err)
				}
				return
			}
			assertCode(t, err, tt.want)
		})
	}
}

func TestAddOrderItem_PricesWithCurrentCatalog(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	order := env.createOrder(t, time.Hour)

	req := &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["珍珠奶茶"].ID,
		PersonName:   "Alice",
		Toppings:     []string{"珍珠"},
	}
	before := env.addItem(t, req)

	_, err := env.shops.UpdateDrinkOptions(ctx, connect.NewRequest(&api.UpdateDrinkOptionsRequest{
		Options: &api.DrinkOptions{
			Sizes:    []string{"中杯", "大杯"},
			Toppings: []api.ToppingOption{{Name: "珍珠", Price: 5}},
		},
	}))
	if err != nil {
		t.Fatalf("UpdateDrinkOptions failed: %v", err)
	}
	after := env.addItem(t, req)

	if before.SubTotal != 50 {
		t.Errorf("subTotal before catalog change: expected 50, got %d", before.SubTotal)
	}
	if after.SubTotal != 45 {
		t.Errorf("subTotal after catalog change: expected 45, got %d", after.SubTotal)
	}

	resp, err := env.orders.GetGroupOrder(ctx, connect.NewRequest(&api.GetGroupOrderRequest{ID: order.ID}))
	if err != nil {
		t.Fatalf("GetGroupOrder failed: %v", err)
	}
	if resp.Msg.Order.Summary.TotalPrice != 95 {
		t.Errorf("totalPrice: expected stored subtotals 50+45=95, got %d", resp.Msg.Order.Summary.TotalPrice)
	}
}

func TestUpdateOrderItem(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	order := env.createOrder(t, time.Hour)

	item := env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["紅茶"].ID,
		PersonName:   "Bob",
		Note:         "去冰",
	})

	t.Run("replaces fields and reprices", func(t *testing.T) {
		resp, err := env.orders.UpdateOrderItem(ctx, connect.NewRequest(&api.UpdateOrderItemRequest{
			GroupOrderID: order.ID,
			ItemID:       item.ID,
			MenuItemID:   env.menu["烏龍奶茶"].ID,
			PersonName:   "Bobby",
			Size:         "大杯",
			Toppings:     []string{"布丁"},
			Quantity:     3,
		}))
		if err != nil {
			t.Fatalf("UpdateOrderItem failed: %v", err)
		}

		got := resp.Msg.Item
		if got.ID != item.ID {
			t.Errorf("id: expected %s, got %s", item.ID, got.ID)
		}
		// (55 + 15) * 3
		if got.SubTotal != 210 {
			t.Errorf("subTotal: expected 210, got %d", got.SubTotal)
		}
		if got.MenuItemName != "烏龍奶茶" || got.PersonName != "Bobby" {
			t.Errorf("fields not replaced: %+v", got)
		}
		if got.Note != nil {
			t.Errorf("note: expected cleared, got %q", *got.Note)
		}
	})

	t.Run("item of another group order", func(t *testing.T) {
		other := env.createOrder(t, time.Hour)
		_, err := env.orders.UpdateOrderItem(ctx, connect.NewRequest(&api.UpdateOrderItemRequest{
			GroupOrderID: other.ID,
			ItemID:       item.ID,
			MenuItemID:   env.menu["紅茶"].ID,
			PersonName:   "Bob",
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := env.orders.UpdateOrderItem(ctx, connect.NewRequest(&api.UpdateOrderItemRequest{
			GroupOrderID: order.ID,
			ItemID:       "missing",
			MenuItemID:   env.menu["紅茶"].ID,
			PersonName:   "Bob",
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("quantity beyond limit keeps stored subtotal", func(t *testing.T) {
		_, err := env.orders.UpdateOrderItem(ctx, connect.NewRequest(&api.UpdateOrderItemRequest{
			GroupOrderID: order.ID,
			ItemID:       item.ID,
			MenuItemID:   env.menu["珍珠奶茶"].ID,
			PersonName:   "Bobby",
			Size:         "大杯",
			Quantity:     maxQuantity + 1,
		}))
		assertCode(t, err, connect.CodeInvalidArgument)

		stored, err := env.store.GetLineItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("store.GetLineItem failed: %v", err)
		}
		if stored.Subtotal != 210 {
			t.Errorf("subtotal: expected 210, got %d", stored.Subtotal)
		}
	})

	t.Run("closed order", func(t *testing.T) {
		env.setStatus(t, order.ID, models.StatusClosed)
		_, err := env.orders.UpdateOrderItem(ctx, connect.NewRequest(&api.UpdateOrderItemRequest{
			GroupOrderID: order.ID,
			ItemID:       item.ID,
			MenuItemID:   env.menu["紅茶"].ID,
			PersonName:   "Bob",
		}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	})
}

func TestRemoveOrderItem(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	order := env.createOrder(t, time.Hour)

	add := func() *api.OrderItemDetail {
		return env.addItem(t, &api.AddOrderItemRequest{
			GroupOrderID: order.ID,
			MenuItemID:   env.menu["紅茶"].ID,
			PersonName:   "Bob",
		})
	}
	remove := func(orderID, itemID string) error {
		_, err := env.orders.RemoveOrderItem(ctx, connect.NewRequest(&api.RemoveOrderItemRequest{
			GroupOrderID: orderID,
			ItemID:       itemID,
		}))
		return err
	}

	first := add()
	second := add()

	if err := remove(order.ID, first.ID); err != nil {
		t.Fatalf("RemoveOrderItem failed: %v", err)
	}
	assertCode(t, remove(order.ID, first.ID), connect.CodeNotFound)

	other := env.createOrder(t, time.Hour)
	assertCode(t, remove(other.ID, second.ID), connect.CodeNotFound)

	// Removal is not guarded by status unless configured.
	env.setStatus(t, order.ID, models.StatusFinalized)
	if err := remove(order.ID, second.ID); err != nil {
		t.Fatalf("RemoveOrderItem on finalized order failed: %v", err)
	}

	resp, err := env.orders.GetGroupOrder(ctx, connect.NewRequest(&api.GetGroupOrderRequest{ID: order.ID}))
	if err != nil {
		t.Fatalf("GetGroupOrder failed: %v", err)
	}
	if resp.Msg.Order.Summary.TotalItems != 0 {
		t.Errorf("totalItems: expected 0, got %d", resp.Msg.Order.Summary.TotalItems)
	}
}

func TestRemoveOrderItem_LockedRemoval(t *testing.T) {
	env := setupTestServer(t, WithLockedRemoval(true))
	ctx := context.Background()
	order := env.createOrder(t, time.Hour)

	item := env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["紅茶"].ID,
		PersonName:   "Bob",
	})
	env.setStatus(t, order.ID, models.StatusClosed)

	_, err := env.orders.RemoveOrderItem(ctx, connect.NewRequest(&api.RemoveOrderItemRequest{
		GroupOrderID: order.ID,
		ItemID:       item.ID,
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestGroupOrderSummary(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	order := env.createOrder(t, time.Hour)

	env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["珍珠奶茶"].ID,
		PersonName:   "Alice",
		Size:         "大杯",
		Toppings:     []string{"珍珠", "椰果"},
		Quantity:     2,
	})
	env.addItem(t, &api.AddOrderItemRequest{
		GroupOrderID: order.ID,
		MenuItemID:   env.menu["紅茶"].ID,
		PersonName:   "Bob",
		Size:         "中杯",
		Quantity:     2,
	})

	resp, err := env.orders.GetGroupOrder(ctx, connect.NewRequest(&api.GetGroupOrderRequest{ID: order.ID}))
	if err != nil {
		t.Fatalf("GetGroupOrder failed: %v", err)
	}
	summary := resp.Msg.Order.Summary

	if summary.TotalParticipants != 2 {
		t.Errorf("totalParticipants: expected 2, got %d", summary.TotalParticipants)
	}
	if summary.TotalCups != 4 {
		t.Errorf("totalCups: expected 4, got %d", summary.TotalCups)
	}
	if summary.TotalPrice != 200 {
		t.Errorf("totalPrice: expected 200, got %d", summary.TotalPrice)
	}
	if len(summary.ByPerson) != 2 {
		t.Fatalf("expected 2 people, got %d", len(summary.ByPerson))
	}

	want := []struct {
		name  string
		total int64
	}{
		{"Alice", 140},
		{"Bob", 60},
	}
	var sum int64
	for i, w := range want {
		person := summary.ByPerson[i]
		if person.Name != w.name || person.PersonTotal != w.total {
			t.Errorf("byPerson[%d]: expected %s %d, got %s %d", i, w.name, w.total, person.Name, person.PersonTotal)
		}
		sum += person.PersonTotal
	}
	if sum != summary.TotalPrice {
		t.Errorf("sum of personTotal %d != totalPrice %d", sum, summary.TotalPrice)
	}
}

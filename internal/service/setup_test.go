package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/middleware"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage/sqlite"
	"github.com/mmynk/drinkorder/pkg/api"
	"github.com/mmynk/drinkorder/pkg/api/apiconnect"
)

// fakeClock is a settable time source shared by the service and the test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.March, 6, 12, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv is a running server with clients for every service and a seeded menu.
type testEnv struct {
	orders apiconnect.GroupOrderServiceClient
	shops  apiconnect.ShopServiceClient
	site   apiconnect.SiteServiceClient
	store  *sqlite.SQLiteStore
	clock  *fakeClock

	shop      *models.Shop
	otherShop *models.Shop
	// menu items by name; 鮮奶茶 belongs to otherShop
	menu map[string]*models.MenuItem
}

// setupTestServer starts all three services over a temp SQLite database.
func setupTestServer(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	env, cleanup, err := startTestEnv(filepath.Join(t.TempDir(), "test.db"), opts...)
	if err != nil {
		t.Fatalf("failed to start test server: %v", err)
	}
	t.Cleanup(cleanup)
	return env
}

// startTestEnv is setupTestServer without a *testing.T, for the feature suite.
func startTestEnv(dbPath string, opts ...Option) (*testEnv, func(), error) {
	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create store: %w", err)
	}

	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)

	siteSvc := NewSiteService(store, "test")
	siteSvc.now = clock.Now

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewGroupOrderServiceHandler(NewGroupOrderService(store, opts...), interceptors))
	mux.Handle(apiconnect.NewShopServiceHandler(NewShopService(store), interceptors))
	mux.Handle(apiconnect.NewSiteServiceHandler(siteSvc, interceptors))

	server := httptest.NewServer(mux)
	cleanup := func() {
		server.Close()
		store.Close()
	}

	env := &testEnv{
		orders: apiconnect.NewGroupOrderServiceClient(http.DefaultClient, server.URL),
		shops:  apiconnect.NewShopServiceClient(http.DefaultClient, server.URL),
		site:   apiconnect.NewSiteServiceClient(http.DefaultClient, server.URL),
		store:  store,
		clock:  clock,
		menu:   make(map[string]*models.MenuItem),
	}
	if err := env.seedMenu(context.Background()); err != nil {
		cleanup()
		return nil, nil, err
	}
	return env, cleanup, nil
}

func (env *testEnv) seedMenu(ctx context.Context) error {
	env.shop = &models.Shop{Name: "測試茶飲", IsActive: true, SortOrder: 1}
	env.otherShop = &models.Shop{Name: "隔壁茶舖", IsActive: true, SortOrder: 2}
	for _, shop := range []*models.Shop{env.shop, env.otherShop} {
		if err := env.store.CreateShop(ctx, shop); err != nil {
			return fmt.Errorf("failed to create shop: %w", err)
		}
	}

	items := []*models.MenuItem{
		{ShopID: env.shop.ID, Name: "珍珠奶茶", Category: "奶茶類", PriceMedium: 40, PriceLarge: 50, SortOrder: 1},
		{ShopID: env.shop.ID, Name: "紅茶", Category: "茶類", PriceMedium: 30, PriceLarge: 35, SortOrder: 2},
		{ShopID: env.shop.ID, Name: "烏龍奶茶", Category: "奶茶類", PriceMedium: 45, PriceLarge: 55, SortOrder: 3},
		{ShopID: env.otherShop.ID, Name: "鮮奶茶", Category: "鮮奶類", PriceMedium: 55, PriceLarge: 65, SortOrder: 1},
	}
	for _, item := range items {
		item.IsActive = true
		if err := env.store.CreateMenuItem(ctx, item); err != nil {
			return fmt.Errorf("failed to create menu item: %w", err)
		}
		env.menu[item.Name] = item
	}
	return nil
}

// deadlineIn formats a deadline relative to the fake clock.
func (env *testEnv) deadlineIn(d time.Duration) string {
	return env.clock.Now().Add(d).Format(api.TimeLayout)
}

// createOrder opens a group order on the seeded shop.
func (env *testEnv) createOrder(t *testing.T, deadline time.Duration) *api.GroupOrderDetail {
	t.Helper()

	resp, err := env.orders.CreateGroupOrder(context.Background(), connect.NewRequest(&api.CreateGroupOrderRequest{
		ShopID:      env.shop.ID,
		CreatorName: "Alice",
		Deadline:    env.deadlineIn(deadline),
	}))
	if err != nil {
		t.Fatalf("CreateGroupOrder failed: %v", err)
	}
	return resp.Msg.Order
}

// addItem adds a line item and fails the test on error.
func (env *testEnv) addItem(t *testing.T, req *api.AddOrderItemRequest) *api.OrderItemDetail {
	t.Helper()

	resp, err := env.orders.AddOrderItem(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	return resp.Msg.Item
}

func (env *testEnv) setStatus(t *testing.T, orderID string, status models.Status) {
	t.Helper()

	_, err := env.orders.UpdateGroupOrderStatus(context.Background(), connect.NewRequest(&api.UpdateGroupOrderStatusRequest{
		ID:     orderID,
		Status: string(status),
	}))
	if err != nil {
		t.Fatalf("UpdateGroupOrderStatus(%s) failed: %v", status, err)
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code = %s, want %s (err: %v)", got, want, err)
	}
}

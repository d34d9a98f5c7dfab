package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/docstore"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage"
	"github.com/mmynk/drinkorder/pkg/api"
	"github.com/mmynk/drinkorder/pkg/api/apiconnect"
)

// ShopService implements the Connect ShopService
type ShopService struct {
	apiconnect.UnimplementedShopServiceHandler
	store   storage.Store
	catalog *docstore.Store[models.Catalog]
}

// NewShopService creates a new ShopService with the given storage backend.
func NewShopService(store storage.Store) *ShopService {
	return &ShopService{
		store:   store,
		catalog: docstore.New(store, docstore.KeyDrinkOptions, models.DefaultCatalog),
	}
}

// ListShops returns the active shops.
func (s *ShopService) ListShops(ctx context.Context, req *connect.Request[api.ListShopsRequest]) (*connect.Response[api.ListShopsResponse], error) {
	slog.Info("ListShops request received")

	shops, err := s.store.ListShops(ctx, true)
	if err != nil {
		slog.Error("ListShops failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]api.Shop, len(shops))
	for i, shop := range shops {
		out[i] = api.Shop{ID: shop.ID, Name: shop.Name, MenuItemCount: shop.MenuItemCount}
	}

	slog.Info("ListShops successful", "count", len(out))

	return connect.NewResponse(&api.ListShopsResponse{Shops: out}), nil
}

// GetShopMenu returns a shop's active menu items grouped by category.
// Categories appear in the order of their first item.
func (s *ShopService) GetShopMenu(ctx context.Context, req *connect.Request[api.GetShopMenuRequest]) (*connect.Response[api.GetShopMenuResponse], error) {
	slog.Info("GetShopMenu request received", "shop_id", req.Msg.ShopID)

	shop, err := s.store.GetShop(ctx, req.Msg.ShopID)
	if err != nil {
		slog.Error("GetShopMenu failed", "shop_id", req.Msg.ShopID, "error", err)
		return nil, connectError(err)
	}

	items, err := s.store.ListMenuItems(ctx, shop.ID, true)
	if err != nil {
		slog.Error("GetShopMenu failed - menu items", "shop_id", shop.ID, "error", err)
		return nil, connectError(err)
	}

	categories := []api.MenuCategory{}
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(categories)
			index[item.Category] = i
			categories = append(categories, api.MenuCategory{Name: item.Category})
		}
		categories[i].Items = append(categories[i].Items, api.MenuItem{
			ID:          item.ID,
			Name:        item.Name,
			PriceMedium: item.PriceMedium,
			PriceLarge:  item.PriceLarge,
		})
	}

	slog.Info("GetShopMenu successful", "shop_id", shop.ID, "items", len(items), "categories", len(categories))

	return connect.NewResponse(&api.GetShopMenuResponse{
		Menu: &api.ShopMenu{
			Shop:       api.ShopRef{ID: shop.ID, Name: shop.Name},
			Categories: categories,
		},
	}), nil
}

// GetDrinkOptions returns the current drink option catalog.
func (s *ShopService) GetDrinkOptions(ctx context.Context, req *connect.Request[api.GetDrinkOptionsRequest]) (*connect.Response[api.GetDrinkOptionsResponse], error) {
	slog.Info("GetDrinkOptions request received")

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		slog.Error("GetDrinkOptions failed", "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetDrinkOptionsResponse{Options: toDrinkOptions(catalog)}), nil
}

// UpdateDrinkOptions replaces the whole drink option catalog.
func (s *ShopService) UpdateDrinkOptions(ctx context.Context, req *connect.Request[api.UpdateDrinkOptionsRequest]) (*connect.Response[api.UpdateDrinkOptionsResponse], error) {
	slog.Info("UpdateDrinkOptions request received")

	catalog, err := fromDrinkOptions(req.Msg.Options)
	if err != nil {
		return nil, connectError(err)
	}
	if err := s.catalog.Save(ctx, catalog); err != nil {
		slog.Error("UpdateDrinkOptions failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Drink options updated",
		"sizes", len(catalog.Sizes),
		"toppings", len(catalog.Toppings),
	)

	return connect.NewResponse(&api.UpdateDrinkOptionsResponse{Options: toDrinkOptions(catalog)}), nil
}

// Package seed loads demo shops and menus into an empty database.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/storage"
)

type menuEntry struct {
	category    string
	name        string
	priceMedium int64
	priceLarge  int64
}

type shopEntry struct {
	name string
	menu []menuEntry
}

var demoShops = []shopEntry{
	{
		name: "五十嵐",
		menu: []menuEntry{
			{"找好茶", "四季春青茶", 30, 35},
			{"找好茶", "黃金烏龍", 30, 35},
			{"找奶茶", "珍珠奶茶", 50, 60},
			{"找奶茶", "四季奶青", 50, 60},
			{"找新鮮", "檸檬綠", 45, 55},
		},
	},
	{
		name: "清心福全",
		menu: []menuEntry{
			{"原味茶", "烏龍綠茶", 30, 35},
			{"原味茶", "冬瓜檸檬", 40, 50},
			{"奶茶", "珍珠奶茶", 45, 55},
			{"奶茶", "蜂蜜奶茶", 50, 60},
		},
	},
	{
		name: "可不可熟成紅茶",
		menu: []menuEntry{
			{"熟成", "熟成紅茶", 30, 35},
			{"熟成", "麗春紅茶", 30, 35},
			{"歐蕾", "熟成歐蕾", 55, 65},
			{"歐蕾", "白玉歐蕾", 65, 75},
		},
	},
}

// Result counts what Run inserted.
type Result struct {
	Shops     int
	MenuItems int
	Skipped   bool
}

// Run inserts the demo shops unless the store already has shops.
func Run(ctx context.Context, store storage.ShopStore) (Result, error) {
	existing, err := store.ListShops(ctx, false)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list shops: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Skipping seed, shops already exist", "count", len(existing))
		return Result{Skipped: true}, nil
	}

	var result Result
	for i, entry := range demoShops {
		shop := &models.Shop{Name: entry.name, IsActive: true, SortOrder: i + 1}
		if err := store.CreateShop(ctx, shop); err != nil {
			return result, fmt.Errorf("failed to seed shop %s: %w", entry.name, err)
		}
		result.Shops++

		for j, m := range entry.menu {
			item := &models.MenuItem{
				ShopID:      shop.ID,
				Name:        m.name,
				Category:    m.category,
				PriceMedium: m.priceMedium,
				PriceLarge:  m.priceLarge,
				IsActive:    true,
				SortOrder:   j + 1,
			}
			if err := store.CreateMenuItem(ctx, item); err != nil {
				return result, fmt.Errorf("failed to seed menu item %s: %w", m.name, err)
			}
			result.MenuItems++
		}
	}

	slog.Info("Seeded demo shops", "shops", result.Shops, "menu_items", result.MenuItems)
	return result, nil
}

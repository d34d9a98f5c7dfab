package service

import (
	"strings"
	"time"

	"github.com/mmynk/drinkorder/internal/calculator"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/pkg/api"
)

func formatTime(t time.Time) string {
	return t.In(time.Local).Format(api.TimeLayout)
}

// parseDeadline accepts the wire layout, the datetime-local layout, and RFC 3339.
func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{api.TimeLayout, api.DeadlineInputLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	// Storage keeps whole seconds, so expiry must not see the fraction either.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Truncate(time.Second), nil
	}
	return time.Time{}, invalidInput("deadline %q is not in %s format", s, api.TimeLayout)
}

// optionalString maps empty strings to nil.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrderItemDetail(item models.LineItem) api.OrderItemDetail {
	toppings := item.Toppings
	if toppings == nil {
		toppings = []string{}
	}
	return api.OrderItemDetail{
		ID:           item.ID,
		MenuItemID:   item.MenuItemID,
		MenuItemName: item.MenuItemName,
		PersonName:   item.PersonName,
		Size:         item.Size,
		SweetLevel:   item.SweetLevel,
		IceLevel:     item.IceLevel,
		Toppings:     toppings,
		Quantity:     item.Quantity,
		Note:         optionalString(item.Note),
		SubTotal:     item.Subtotal,
	}
}

func toOrderSummary(items []models.LineItem) api.OrderSummary {
	summary := calculator.Summarize(items)

	byPerson := make([]api.PersonOrderSummary, len(summary.ByPerson))
	for i, person := range summary.ByPerson {
		details := make([]api.OrderItemDetail, len(person.Items))
		for j, item := range person.Items {
			details[j] = toOrderItemDetail(item)
		}
		byPerson[i] = api.PersonOrderSummary{
			Name:        person.Name,
			Items:       details,
			PersonTotal: person.PersonTotal,
		}
	}

	return api.OrderSummary{
		TotalParticipants: summary.TotalParticipants,
		TotalItems:        len(items),
		TotalCups:         summary.TotalCups,
		TotalPrice:        summary.TotalPrice,
		ByPerson:          byPerson,
	}
}

func toGroupOrderDetail(order *models.GroupOrder, shopName string, items []models.LineItem) *api.GroupOrderDetail {
	return &api.GroupOrderDetail{
		ID:          order.ID,
		Shop:        api.ShopRef{ID: order.ShopID, Name: shopName},
		CreatorName: order.CreatorName,
		Title:       optionalString(order.Title),
		Deadline:    formatTime(order.Deadline),
		Status:      string(order.Status),
		CreatedAt:   formatTime(order.CreatedAt),
		Summary:     toOrderSummary(items),
	}
}

func toGroupOrderListItem(order models.GroupOrder, shopName string, items []models.LineItem) api.GroupOrderListItem {
	summary := calculator.Summarize(items)
	return api.GroupOrderListItem{
		ID:          order.ID,
		ShopName:    shopName,
		CreatorName: order.CreatorName,
		Title:       optionalString(order.Title),
		Deadline:    formatTime(order.Deadline),
		Status:      string(order.Status),
		ItemCount:   len(items),
		TotalCups:   summary.TotalCups,
		TotalPrice:  summary.TotalPrice,
		CreatedAt:   formatTime(order.CreatedAt),
	}
}

func toDrinkOptions(catalog *models.Catalog) *api.DrinkOptions {
	toppings := make([]api.ToppingOption, len(catalog.Toppings))
	for i, t := range catalog.Toppings {
		toppings[i] = api.ToppingOption{Name: t.Name, Price: t.Price}
	}
	return &api.DrinkOptions{
		SweetLevels: nonNil(catalog.SweetLevels),
		IceLevels:   nonNil(catalog.IceLevels),
		Sizes:       nonNil(catalog.Sizes),
		Toppings:    toppings,
	}
}

// fromDrinkOptions validates and converts an options payload into a catalog.
func fromDrinkOptions(options *api.DrinkOptions) (*models.Catalog, error) {
	if options == nil {
		return nil, invalidInput("options required")
	}

	catalog := &models.Catalog{
		Sizes:       trimAll(options.Sizes),
		SweetLevels: trimAll(options.SweetLevels),
		IceLevels:   trimAll(options.IceLevels),
		Toppings:    make([]models.ToppingOption, len(options.Toppings)),
	}
	for i, t := range options.Toppings {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, invalidInput("topping %d has no name", i)
		}
		if t.Price < 0 {
			return nil, invalidInput("topping %s has negative price %d", name, t.Price)
		}
		catalog.Toppings[i] = models.ToppingOption{Name: name, Price: t.Price}
	}
	return catalog, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

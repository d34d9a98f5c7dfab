package calculator

const (
	// SizeLarge selects the large base price.
	SizeLarge = "大杯"
	// SizeMedium selects the medium base price. Any label other than
	// SizeLarge prices as medium.
	SizeMedium = "中杯"
)

// BasePrices holds a menu item's per-size base prices.
type BasePrices struct {
	Medium int64
	Large  int64
}

// ToppingPricer looks up topping prices from a catalog snapshot.
// ok is false for names the catalog does not know.
type ToppingPricer interface {
	ToppingPrice(name string) (price int64, ok bool)
}

// BasePrice returns the base price for size.
// SizeLarge maps to the large price; every other value, including empty and
// unrecognized labels, maps to the medium price.
func BasePrice(prices BasePrices, size string) int64 {
	if size == SizeLarge {
		return prices.Large
	}
	return prices.Medium
}

// ToppingsTotal sums the price of every topping in order. Duplicates are
// priced each time they appear and unknown toppings contribute zero.
func ToppingsTotal(toppings []string, pricer ToppingPricer) int64 {
	var total int64
	for _, name := range toppings {
		if price, ok := pricer.ToppingPrice(name); ok {
			total += price
		}
	}
	return total
}

// LineSubtotal computes a line item's subtotal:
//
//	(base price for size + sum of topping prices) * quantity
//
// It does not validate quantity; callers reject non-positive values first.
func LineSubtotal(prices BasePrices, size string, toppings []string, quantity int, pricer ToppingPricer) int64 {
	unit := BasePrice(prices, size) + ToppingsTotal(toppings, pricer)
	return unit * int64(quantity)
}

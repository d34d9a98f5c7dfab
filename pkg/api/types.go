package api

// TimeLayout is the wire format for timestamps, in server local time.
const TimeLayout = "2006-01-02T15:04:05"

// DeadlineInputLayout is also accepted for deadlines (HTML datetime-local).
const DeadlineInputLayout = "2006-01-02T15:04"

type ShopRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Shop struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MenuItemCount int    `json:"menuItemCount"`
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceMedium int64  `json:"priceMedium"`
	PriceLarge  int64  `json:"priceLarge"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type ShopMenu struct {
	Shop       ShopRef        `json:"shop"`
	Categories []MenuCategory `json:"categories"`
}

type ToppingOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type DrinkOptions struct {
	SweetLevels []string        `json:"sweetLevels"`
	IceLevels   []string        `json:"iceLevels"`
	Sizes       []string        `json:"sizes"`
	Toppings    []ToppingOption `json:"toppings"`
}

// GroupOrderListItem is one row of the group order list.
type GroupOrderListItem struct {
	ID          string  `json:"id"`
	ShopName    string  `json:"shopName"`
	CreatorName string  `json:"creatorName"`
	Title       *string `json:"title"`
	Deadline    string  `json:"deadline"`
	Status      string  `json:"status"`
	ItemCount   int     `json:"itemCount"`
	TotalCups   int     `json:"totalCups"`
	TotalPrice  int64   `json:"totalPrice"`
	CreatedAt   string  `json:"createdAt"`
}

type OrderItemDetail struct {
	ID           string   `json:"id"`
	MenuItemID   string   `json:"menuItemId"`
	MenuItemName string   `json:"menuItemName"`
	PersonName   string   `json:"personName"`
	Size         string   `json:"size"`
	SweetLevel   string   `json:"sweetLevel"`
	IceLevel     string   `json:"iceLevel"`
	Toppings     []string `json:"toppings"`
	Quantity     int      `json:"quantity"`
	Note         *string  `json:"note"`
	SubTotal     int64    `json:"subTotal"`
}

type PersonOrderSummary struct {
	Name        string            `json:"name"`
	Items       []OrderItemDetail `json:"items"`
	PersonTotal int64             `json:"personTotal"`
}

type OrderSummary struct {
	TotalParticipants int                  `json:"totalParticipants"`
	TotalItems        int                  `json:"totalItems"`
	TotalCups         int                  `json:"totalCups"`
	TotalPrice        int64                `json:"totalPrice"`
	ByPerson          []PersonOrderSummary `json:"byPerson"`
}

type GroupOrderDetail struct {
	ID          string       `json:"id"`
	Shop        ShopRef      `json:"shop"`
	CreatorName string       `json:"creatorName"`
	Title       *string      `json:"title"`
	Deadline    string       `json:"deadline"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"createdAt"`
	Summary     OrderSummary `json:"summary"`
}

type SiteSettings struct {
	SiteName    string `json:"siteName"`
	Description string `json:"description"`
}

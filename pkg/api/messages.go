package api

// GroupOrderService

type CreateGroupOrderRequest struct {
	ShopID      string `json:"shopId"`
	CreatorName string `json:"creatorName"`
	Title       string `json:"title,omitempty"`
	Deadline    string `json:"deadline"`
}

type CreateGroupOrderResponse struct {
	Order *GroupOrderDetail `json:"order"`
}

type GetGroupOrderRequest struct {
	ID string `json:"id"`
}

type GetGroupOrderResponse struct {
	Order *GroupOrderDetail `json:"order"`
}

type ListGroupOrdersRequest struct {
	// Status filters by exact status when set.
	Status string `json:"status,omitempty"`
}

type ListGroupOrdersResponse struct {
	Orders []GroupOrderListItem `json:"orders"`
}

type UpdateGroupOrderStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateGroupOrderStatusResponse struct {
	Order *GroupOrderDetail `json:"order"`
}

type DeleteGroupOrderRequest struct {
	ID string `json:"id"`
}

type DeleteGroupOrderResponse struct{}

type AddOrderItemRequest struct {
	GroupOrderID string   `json:"groupOrderId"`
	MenuItemID   string   `json:"menuItemId"`
	PersonName   string   `json:"personName"`
	Size         string   `json:"size"`
	SweetLevel   string   `json:"sweetLevel"`
	IceLevel     string   `json:"iceLevel"`
	Toppings     []string `json:"toppings,omitempty"`
	Quantity     int      `json:"quantity,omitempty"`
	Note         string   `json:"note,omitempty"`
}

type AddOrderItemResponse struct {
	Item *OrderItemDetail `json:"item"`
}

type UpdateOrderItemRequest struct {
	GroupOrderID string   `json:"groupOrderId"`
	ItemID       string   `json:"itemId"`
	MenuItemID   string   `json:"menuItemId"`
	PersonName   string   `json:"personName"`
	Size         string   `json:"size"`
	SweetLevel   string   `json:"sweetLevel"`
	IceLevel     string   `json:"iceLevel"`
	Toppings     []string `json:"toppings,omitempty"`
	Quantity     int      `json:"quantity,omitempty"`
	Note         string   `json:"note,omitempty"`
}

type UpdateOrderItemResponse struct {
	Item *OrderItemDetail `json:"item"`
}

type RemoveOrderItemRequest struct {
	GroupOrderID string `json:"groupOrderId"`
	ItemID       string `json:"itemId"`
}

type RemoveOrderItemResponse struct{}

// ShopService

type ListShopsRequest struct{}

type ListShopsResponse struct {
	Shops []Shop `json:"shops"`
}

type GetShopMenuRequest struct {
	ShopID string `json:"shopId"`
}

type GetShopMenuResponse struct {
	Menu *ShopMenu `json:"menu"`
}

type GetDrinkOptionsRequest struct{}

type GetDrinkOptionsResponse struct {
	Options *DrinkOptions `json:"options"`
}

type UpdateDrinkOptionsRequest struct {
	Options *DrinkOptions `json:"options"`
}

type UpdateDrinkOptionsResponse struct {
	Options *DrinkOptions `json:"options"`
}

// SiteService

type HealthRequest struct{}

type HealthResponse struct {
	Status      string `json:"status"`
	ServerTime  string `json:"serverTime"`
	Environment string `json:"environment"`
	GoVersion   string `json:"goVersion"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *SiteSettings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings *SiteSettings `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings *SiteSettings `json:"settings"`
}

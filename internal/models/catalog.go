package models

// ToppingOption is a selectable topping and its incremental price.
type ToppingOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Catalog is the set of selectable drink options used for pricing.
// It is stored as a whole snapshot and has no version.
type Catalog struct {
	Sizes       []string        `json:"sizes"`
	SweetLevels []string        `json:"sweetLevels"`
	IceLevels   []string        `json:"iceLevels"`
	Toppings    []ToppingOption `json:"toppings"`
}

// DefaultCatalog returns the built-in options used until a catalog is saved.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Sizes:       []string{"中杯", "大杯"},
		SweetLevels: []string{"正常糖", "少糖", "半糖", "微糖", "無糖"},
		IceLevels:   []string{"正常冰", "少冰", "微冰", "去冰", "溫", "熱"},
		Toppings: []ToppingOption{
			{Name: "珍珠", Price: 10},
			{Name: "椰果", Price: 10},
			{Name: "仙草", Price: 10},
			{Name: "布丁", Price: 15},
			{Name: "芋圓", Price: 15},
			{Name: "奶蓋", Price: 20},
		},
	}
}

// ToppingPrice looks up a topping by exact name.
// Unknown names report (0, false).
func (c *Catalog) ToppingPrice(name string) (int64, bool) {
	for _, t := range c.Toppings {
		if t.Name == name {
			return t.Price, true
		}
	}
	return 0, false
}

// SiteSettings holds site-wide display settings.
type SiteSettings struct {
	SiteName    string `json:"siteName"`
	Description string `json:"description"`
}

// DefaultSiteSettings returns the settings used until they are saved.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:    "我的 VibeCoding 網站",
		Description: "用 AI 打造的第一個作品",
	}
}

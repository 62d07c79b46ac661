package domain

// ShopCategory splits the shop surface into digital and physical goods.
type ShopCategory string

const (
	ShopDigital  ShopCategory = "Digital"
	ShopPhysical ShopCategory = "Physical"
)

// ShopItem is an affiliate product shown on the shop page. Price is a display
// string, not an amount.
type ShopItem struct {
	ID         string
	Name       string
	ProductURL string
	ImageURL   string
	Price      string
	Category   ShopCategory
}

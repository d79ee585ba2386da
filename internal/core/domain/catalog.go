package domain

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable bakery item.
type CatalogItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// DefaultCatalogItems is the catalog a fresh storefront opens with.
func DefaultCatalogItems() []CatalogItem {
	return []CatalogItem{
		{ID: "1", Name: "Chocolate Cake", Price: decimal.NewFromInt(12)},
		{ID: "2", Name: "Blueberry Muffin", Price: decimal.NewFromInt(4)},
	}
}

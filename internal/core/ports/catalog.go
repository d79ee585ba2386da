package ports

import (
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// Catalog is the staff-managed item collection. Implementations do not check
// roles or re-validate name and price; the orchestrator does both.
type Catalog interface {
	Add(name string, price decimal.Decimal) domain.CatalogItem
	// Update replaces name and price in place. Returns domain.ErrItemNotFound.
	Update(id, name string, price decimal.Decimal) error
	// Remove deletes by id. Returns domain.ErrItemNotFound.
	Remove(id string) error
	Get(id string) (domain.CatalogItem, bool)
	// List returns a snapshot in insertion order.
	List() []domain.CatalogItem
}

// IDGenerator produces catalog item ids.
type IDGenerator func() string

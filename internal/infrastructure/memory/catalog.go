package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// Catalog is an insertion-ordered item list. Lookups are linear; a bakery
// menu stays small.
type Catalog struct {
	items []domain.CatalogItem
	newID ports.IDGenerator
}

// CatalogOption customises a Catalog.
type CatalogOption func(*Catalog)

// WithIDGenerator overrides the default UUID id source.
func WithIDGenerator(gen ports.IDGenerator) CatalogOption {
	return func(c *Catalog) { c.newID = gen }
}

// WithItems seeds the catalog. Items are copied.
func WithItems(items ...domain.CatalogItem) CatalogOption {
	return func(c *Catalog) { c.items = append(c.items, items...) }
}

func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{newID: uuid.NewString}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add stores a new item under a fresh id. Name and price are taken as given.
func (c *Catalog) Add(name string, price decimal.Decimal) domain.CatalogItem {
	id := c.newID()
	for c.indexOf(id) >= 0 {
		id = c.newID()
	}
	item := domain.CatalogItem{ID: id, Name: name, Price: price}
	c.items = append(c.items, item)
	return item
}

func (c *Catalog) Update(id, name string, price decimal.Decimal) error {
	i := c.indexOf(id)
	if i < 0 {
		return domain.ErrItemNotFound
	}
	c.items[i] = domain.CatalogItem{ID: id, Name: name, Price: price}
	return nil
}

func (c *Catalog) Remove(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return domain.ErrItemNotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Catalog) Get(id string) (domain.CatalogItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return domain.CatalogItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) List() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

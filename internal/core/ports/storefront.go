package ports

import (
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// Storefront is the session controller seen by transport adapters. All
// methods are synchronous and must be called one at a time.
type Storefront interface {
	Register(username, password string) error
	Login(username, password string) (domain.User, error)
	Logout()
	CurrentUser() (domain.User, bool)
	SessionID() string

	Catalog() []domain.CatalogItem
	AddItem(name string, price decimal.Decimal) (domain.CatalogItem, error)
	UpdateItem(id, name string, price decimal.Decimal) error
	DeleteItem(id string) error

	Cart() []domain.CartLine
	Subtotal() decimal.Decimal
	State() domain.OrderState
	AddToCart(item domain.CatalogItem) error
	AddToCartByID(id string) (domain.CartLine, error)
	RemoveFromCart(id string) error

	Checkout() (domain.Order, error)
	Pay(details domain.PaymentDetails) (domain.Receipt, error)
}

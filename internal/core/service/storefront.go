package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// Storefront is the session controller. It owns the active user, the cart and
// the order state, and gates every catalog mutation on the user's role.
//
// Storefront is not safe for concurrent use. Callers must run one operation
// at a time (see queue.Serializer).
type Storefront struct {
	identity ports.IdentityStore
	catalog  ports.Catalog
	log      zerolog.Logger
	now      func() time.Time

	user      *domain.User
	sessionID string
	cart      domain.Cart
	state     domain.OrderState
}

func NewStorefront(identity ports.IdentityStore, catalog ports.Catalog, log zerolog.Logger) *Storefront {
	return &Storefront{
		identity: identity,
		catalog:  catalog,
		log:      log,
		now:      time.Now,
		state:    domain.StateBrowsing,
	}
}

// --- Identity ---------------------------------------------------------------

func (s *Storefront) Register(username, password string) error {
	if err := s.identity.Register(username, password); err != nil {
		return s.reject("register", err)
	}
	s.log.Info().Str("username", username).Msg("customer registered")
	return nil
}

// Login checks the staff account first, then registered customers. A customer
// login starts a fresh cart; a staff login leaves the cart alone. A failed
// attempt changes nothing.
func (s *Storefront) Login(username, password string) (domain.User, error) {
	var user domain.User
	switch {
	case s.identity.AuthenticateStaff(username, password):
		user = domain.User{Role: domain.RoleStaff, Name: domain.StaffName}
	default:
		cred, ok := s.identity.AuthenticateCustomer(username, password)
		if !ok {
			return domain.User{}, s.reject("login", domain.ErrInvalidCredentials)
		}
		user = domain.User{Role: domain.RoleCustomer, Name: cred.Username}
		s.resetCart()
	}

	s.user = &user
	s.sessionID = uuid.NewString()
	s.log.Info().Str("name", user.Name).Str("role", string(user.Role)).Msg("logged in")
	return user, nil
}

func (s *Storefront) Logout() {
	if s.user != nil {
		s.log.Info().Str("name", s.user.Name).Msg("logged out")
	}
	s.user = nil
	s.sessionID = ""
	s.resetCart()
}

func (s *Storefront) CurrentUser() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// SessionID identifies the current login. It changes on every successful
// login and is empty when nobody is logged in.
func (s *Storefront) SessionID() string { return s.sessionID }

// --- Catalog ----------------------------------------------------------------

func (s *Storefront) Catalog() []domain.CatalogItem { return s.catalog.List() }

func (s *Storefront) AddItem(name string, price decimal.Decimal) (domain.CatalogItem, error) {
	if err := s.requireStaff(); err != nil {
		return domain.CatalogItem{}, s.reject("add_item", err)
	}
	if err := validateItem(name, price); err != nil {
		return domain.CatalogItem{}, s.reject("add_item", err)
	}
	item := s.catalog.Add(name, price)
	s.log.Info().Str("item_id", item.ID).Str("name", name).Msg("catalog item added")
	return item, nil
}

func (s *Storefront) UpdateItem(id, name string, price decimal.Decimal) error {
	if err := s.requireStaff(); err != nil {
		return s.reject("update_item", err)
	}
	if err := validateItem(name, price); err != nil {
		return s.reject("update_item", err)
	}
	if err := s.catalog.Update(id, name, price); err != nil {
		return s.reject("update_item", fmt.Errorf("update item %s: %w", id, err))
	}
	s.log.Info().Str("item_id", id).Msg("catalog item updated")
	return nil
}

func (s *Storefront) DeleteItem(id string) error {
	if err := s.requireStaff(); err != nil {
		return s.reject("delete_item", err)
	}
	if err := s.catalog.Remove(id); err != nil {
		return s.reject("delete_item", fmt.Errorf("delete item %s: %w", id, err))
	}
	s.log.Info().Str("item_id", id).Msg("catalog item deleted")
	return nil
}

func validateItem(name string, price decimal.Decimal) error {
	if name == "" {
		return domain.ErrMissingField
	}
	if price.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}

// --- Cart -------------------------------------------------------------------

func (s *Storefront) Cart() []domain.CartLine { return s.cart.Lines() }

func (s *Storefront) Subtotal() decimal.Decimal { return s.cart.Subtotal() }

func (s *Storefront) State() domain.OrderState { return s.state }

// AddToCart appends a copy of item as it is now.
func (s *Storefront) AddToCart(item domain.CatalogItem) error {
	if err := s.requireCustomer(); err != nil {
		return s.reject("add_to_cart", err)
	}
	s.cart.AddLine(item)
	s.transition(domain.StateReviewing)
	return nil
}

// AddToCartByID copies the current catalog entry for id into the cart.
func (s *Storefront) AddToCartByID(id string) (domain.CartLine, error) {
	if err := s.requireCustomer(); err != nil {
		return domain.CartLine{}, s.reject("add_to_cart", err)
	}
	item, ok := s.catalog.Get(id)
	if !ok {
		return domain.CartLine{}, s.reject("add_to_cart", fmt.Errorf("add to cart %s: %w", id, domain.ErrItemNotFound))
	}
	line := s.cart.AddLine(item)
	s.transition(domain.StateReviewing)
	return line, nil
}

// RemoveFromCart drops the first line carrying id.
func (s *Storefront) RemoveFromCart(id string) error {
	if err := s.requireCustomer(); err != nil {
		return s.reject("remove_from_cart", err)
	}
	if !s.cart.RemoveLine(id) {
		return s.reject("remove_from_cart", fmt.Errorf("remove from cart %s: %w", id, domain.ErrItemNotFound))
	}
	if s.cart.IsEmpty() {
		s.transition(domain.StateBrowsing)
	} else {
		s.transition(domain.StateReviewing)
	}
	return nil
}

// --- Checkout & payment -----------------------------------------------------

// Checkout moves a non-empty cart to payment. It records nothing and may be
// repeated while the cart is unchanged.
func (s *Storefront) Checkout() (domain.Order, error) {
	if err := s.requireCustomer(); err != nil {
		return domain.Order{}, s.reject("checkout", err)
	}
	if s.cart.IsEmpty() {
		return domain.Order{}, s.reject("checkout", domain.ErrEmptyCartCheckout)
	}
	s.transition(domain.StatePaying)
	return domain.Order{Lines: s.cart.Lines(), Subtotal: s.cart.Subtotal()}, nil
}

// Pay completes the order. Card fields are only checked for presence.
// On success the cart is cleared.
func (s *Storefront) Pay(details domain.PaymentDetails) (domain.Receipt, error) {
	if err := s.requireCustomer(); err != nil {
		return domain.Receipt{}, s.reject("pay", err)
	}
	if !s.state.CanTransitionTo(domain.StateCompleted) {
		return domain.Receipt{}, s.reject("pay", fmt.Errorf("pay from %s: %w", s.state, domain.ErrInvalidTransition))
	}
	if !details.Complete() {
		return domain.Receipt{}, s.reject("pay", domain.ErrIncompletePayment)
	}

	receipt := domain.Receipt{
		Customer:  s.user.Name,
		Lines:     s.cart.Lines(),
		Total:     s.cart.Subtotal(),
		CardLast4: details.CardLast4(),
		PaidAt:    s.now().UTC(),
	}
	s.cart.Clear()
	s.transition(domain.StateCompleted)

	s.log.Info().
		Str("customer", receipt.Customer).
		Int("lines", len(receipt.Lines)).
		Str("total", receipt.Total.StringFixed(2)).
		Msg("order paid")
	return receipt, nil
}

// --- helpers ----------------------------------------------------------------

func (s *Storefront) requireStaff() error {
	if s.user == nil || !s.user.IsStaff() {
		return domain.ErrAccessDenied
	}
	return nil
}

func (s *Storefront) requireCustomer() error {
	if s.user == nil || !s.user.IsCustomer() {
		return domain.ErrAccessDenied
	}
	return nil
}

func (s *Storefront) resetCart() {
	s.cart.Clear()
	s.state = domain.StateBrowsing
}

// transition moves to next. Callers only request transitions the table
// allows; anything else is a programming error and is logged, not applied.
func (s *Storefront) transition(next domain.OrderState) {
	if !s.state.CanTransitionTo(next) {
		s.log.Error().Str("from", string(s.state)).Str("to", string(next)).Msg("illegal order state transition")
		return
	}
	if s.state != next {
		s.log.Debug().Str("from", string(s.state)).Str("to", string(next)).Msg("order state changed")
	}
	s.state = next
}

func (s *Storefront) reject(op string, err error) error {
	s.log.Debug().Str("op", op).Str("kind", string(domain.KindOf(err))).Err(err).Msg("operation rejected")
	return err
}

var _ ports.Storefront = (*Storefront)(nil)

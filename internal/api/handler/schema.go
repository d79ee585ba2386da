package handler

import (
	"github.com/shopspring/decimal"

	"github.com/sweettreats/storefront/internal/core/domain"
)

// --- Requests ---

type credentialsRequest struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

type catalogItemRequest struct {
	Name  string           `json:"name"  validate:"max=80"`
	Price *decimal.Decimal `json:"price"`
}

type cartLineRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type paymentRequest struct {
	CardNumber string `json:"card_number" validate:"omitempty,max=23"`
	Expiry     string `json:"exp"         validate:"omitempty,max=7"`
	CVV        string `json:"cvv"         validate:"omitempty,numeric,max=4"`
}

// --- Responses ---
// Every response carries "success"; failures are rendered by the HTTP error
// handler with an error kind.

type okResponse struct {
	Success bool `json:"success"`
}

type registerResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

type sessionResponse struct {
	Success bool              `json:"success"`
	User    *domain.User      `json:"user"`
	State   domain.OrderState `json:"state"`
}

type catalogResponse struct {
	Success bool                 `json:"success"`
	Items   []domain.CatalogItem `json:"items"`
}

type catalogItemResponse struct {
	Success bool               `json:"success"`
	Item    domain.CatalogItem `json:"item"`
}

type cartResponse struct {
	Success  bool              `json:"success"`
	Lines    []domain.CartLine `json:"lines"`
	Subtotal decimal.Decimal   `json:"subtotal"`
	State    domain.OrderState `json:"state"`
}

type checkoutResponse struct {
	Success bool              `json:"success"`
	Order   domain.Order      `json:"order"`
	State   domain.OrderState `json:"state"`
}

type paymentResponse struct {
	Success bool              `json:"success"`
	Receipt domain.Receipt    `json:"receipt"`
	State   domain.OrderState `json:"state"`
}

// errorResponse documents the envelope written by the HTTP error handler.
type errorResponse struct {
	Success   bool   `json:"success"`
	ErrorKind string `json:"error_kind,omitempty"`
	Error     string `json:"error"`
}

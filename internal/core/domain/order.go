package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderState is the lifecycle position of the active customer session.
type OrderState string

const (
	StateBrowsing  OrderState = "Browsing"
	StateReviewing OrderState = "Reviewing"
	StatePaying    OrderState = "Paying"
	StateCompleted OrderState = "Completed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderState][]OrderState{
	StateBrowsing:  {StateReviewing},
	StateReviewing: {StateReviewing, StateBrowsing, StatePaying},
	StatePaying:    {StatePaying, StateReviewing, StateBrowsing, StateCompleted},
	StateCompleted: {StateReviewing},
}

// CanTransitionTo reports whether a transition from current state to next is valid.
func (s OrderState) CanTransitionTo(next OrderState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is the cart as it stood when checkout was confirmed. It is not kept
// anywhere after payment.
type Order struct {
	Lines    []CartLine      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PaymentDetails is the card data entered on the payment screen. Only
// presence is checked.
type PaymentDetails struct {
	CardNumber string
	Expiry     string
	CVV        string
}

// Complete reports whether every card field is filled in.
func (p PaymentDetails) Complete() bool {
	return p.CardNumber != "" && p.Expiry != "" && p.CVV != ""
}

// CardLast4 returns the last four characters of the card number, spaces
// ignored.
func (p PaymentDetails) CardLast4() string {
	n := []rune(strings.ReplaceAll(p.CardNumber, " ", ""))
	if len(n) <= 4 {
		return string(n)
	}
	return string(n[len(n)-4:])
}

// Receipt is the confirmation handed back after a successful payment.
type Receipt struct {
	Customer  string          `json:"customer"`
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CardLast4 string          `json:"card_last4"`
	PaidAt    time.Time       `json:"paid_at"`
}

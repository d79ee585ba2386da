package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestOrderState_Transitions(t *testing.T) {
	cases := []struct {
		from, to OrderState
		ok       bool
	}{
		{StateBrowsing, StateReviewing, true},
		{StateBrowsing, StatePaying, false},
		{StateBrowsing, StateCompleted, false},
		{StateReviewing, StatePaying, true},
		{StateReviewing, StateBrowsing, true},
		{StateReviewing, StateCompleted, false},
		{StatePaying, StatePaying, true},
		{StatePaying, StateCompleted, true},
		{StatePaying, StateReviewing, true},
		{StateCompleted, StateReviewing, true},
		{StateCompleted, StatePaying, false},
		{StateCompleted, StateCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestPaymentDetails_Complete(t *testing.T) {
	if !(PaymentDetails{CardNumber: "4111", Expiry: "12/29", CVV: "123"}).Complete() {
		t.Fatalf("expected complete")
	}
	if (PaymentDetails{CardNumber: "4111", Expiry: "12/29"}).Complete() {
		t.Fatalf("missing cvv must be incomplete")
	}
}

func TestPaymentDetails_CardLast4(t *testing.T) {
	cases := map[string]string{
		"4111 1111 1111 1234": "1234",
		"4111":                "4111",
		"42":                  "42",
		"４１１１ ５６７８":           "５６７８",
		"cardé1234":           "1234",
		"12é4":                "12é4",
		"9ééé":                "9ééé",
	}
	for in, want := range cases {
		got := (PaymentDetails{CardNumber: in}).CardLast4()
		if got != want {
			t.Errorf("CardLast4(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("CardLast4(%q) is not valid UTF-8", in)
		}
	}
}

func TestOrderState_WireNames(t *testing.T) {
	want := map[OrderState]string{
		StateBrowsing:  "Browsing",
		StateReviewing: "Reviewing",
		StatePaying:    "Paying",
		StateCompleted: "Completed",
	}
	for state, name := range want {
		b, err := json.Marshal(state)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != `"`+name+`"` {
			t.Errorf("expected %q, got %s", name, b)
		}
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("delete item 9: %w", ErrItemNotFound)
	if KindOf(wrapped) != KindItemNotFound {
		t.Fatalf("expected ItemNotFound, got %q", KindOf(wrapped))
	}
	if KindOf(errors.New("boom")) != "" {
		t.Fatalf("expected empty kind for foreign errors")
	}
	if KindOf(nil) != "" {
		t.Fatalf("expected empty kind for nil")
	}
}

package domain

import "errors"

// ErrorKind names a rejected-operation category reported back to the caller.
type ErrorKind string

const (
	KindInvalidCredentials ErrorKind = "InvalidCredentials"
	KindDuplicateUsername  ErrorKind = "DuplicateUsername"
	KindMissingField       ErrorKind = "MissingField"
	KindAccessDenied       ErrorKind = "AccessDenied"
	KindItemNotFound       ErrorKind = "ItemNotFound"
	KindEmptyCartCheckout  ErrorKind = "EmptyCartCheckout"
	KindIncompletePayment  ErrorKind = "IncompletePayment"
	KindInvalidPrice       ErrorKind = "InvalidPrice"
	KindInvalidTransition  ErrorKind = "InvalidTransition"
)

// Error is a recoverable, user-correctable failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid login"}
	ErrDuplicateUsername  = &Error{Kind: KindDuplicateUsername, Message: "username exists"}
	ErrMissingField       = &Error{Kind: KindMissingField, Message: "fill all fields"}
	ErrAccessDenied       = &Error{Kind: KindAccessDenied, Message: "no access"}
	ErrItemNotFound       = &Error{Kind: KindItemNotFound, Message: "item not found"}
	ErrEmptyCartCheckout  = &Error{Kind: KindEmptyCartCheckout, Message: "cart is empty"}
	ErrIncompletePayment  = &Error{Kind: KindIncompletePayment, Message: "fill all card details"}
	ErrInvalidPrice       = &Error{Kind: KindInvalidPrice, Message: "price must not be negative"}
	ErrInvalidTransition  = &Error{Kind: KindInvalidTransition, Message: "invalid order state transition"}
)

// KindOf returns the kind carried by err, or "" when err is nil or not a
// domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

package ports

import "github.com/sweettreats/storefront/internal/core/domain"

// IdentityStore holds registered customer credentials and checks logins.
type IdentityStore interface {
	// Register appends a credential. It fails with domain.ErrMissingField when
	// either field is empty and domain.ErrDuplicateUsername when the username
	// is taken.
	Register(username, password string) error
	// AuthenticateStaff checks against the single fixed staff account.
	AuthenticateStaff(username, password string) bool
	// AuthenticateCustomer returns the matching credential, if any.
	AuthenticateCustomer(username, password string) (domain.Credential, bool)
}

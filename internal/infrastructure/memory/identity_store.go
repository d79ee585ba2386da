package memory

import (
	"github.com/sweettreats/storefront/internal/core/domain"
)

// IdentityStore keeps customer credentials for the lifetime of the process.
type IdentityStore struct {
	credentials []domain.Credential
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{}
}

func (s *IdentityStore) Register(username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingField
	}
	for _, c := range s.credentials {
		if c.Username == username {
			return domain.ErrDuplicateUsername
		}
	}
	s.credentials = append(s.credentials, domain.Credential{Username: username, Password: password})
	return nil
}

func (s *IdentityStore) AuthenticateStaff(username, password string) bool {
	return username == domain.StaffUsername && password == domain.StaffPassword
}

func (s *IdentityStore) AuthenticateCustomer(username, password string) (domain.Credential, bool) {
	for _, c := range s.credentials {
		if c.Username == username && c.Password == password {
			return c, true
		}
	}
	return domain.Credential{}, false
}

// Credentials returns a snapshot of every registered credential.
func (s *IdentityStore) Credentials() []domain.Credential {
	out := make([]domain.Credential, len(s.credentials))
	copy(out, s.credentials)
	return out
}

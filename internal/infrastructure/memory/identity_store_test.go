package memory

import (
	"errors"
	"testing"

	"github.com/sweettreats/storefront/internal/core/domain"
)

func TestIdentityStore_Register(t *testing.T) {
	s := NewIdentityStore()
	if err := s.Register("alice", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	creds := s.Credentials()
	if len(creds) != 1 || creds[0].Username != "alice" || creds[0].Password != "pw1" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestIdentityStore_Register_MissingField(t *testing.T) {
	s := NewIdentityStore()
	if err := s.Register("", "pw"); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if err := s.Register("bob", ""); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if len(s.Credentials()) != 0 {
		t.Fatalf("rejected registrations must not be stored")
	}
}

func TestIdentityStore_Register_Duplicate(t *testing.T) {
	s := NewIdentityStore()
	_ = s.Register("bob", "x")
	if err := s.Register("bob", "y"); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if _, ok := s.AuthenticateCustomer("bob", "y"); ok {
		t.Fatalf("second password must not be accepted")
	}
	if _, ok := s.AuthenticateCustomer("bob", "x"); !ok {
		t.Fatalf("original password must still work")
	}
}

func TestIdentityStore_AuthenticateStaff(t *testing.T) {
	s := NewIdentityStore()
	if !s.AuthenticateStaff("staff", "1234") {
		t.Fatalf("expected staff account to authenticate")
	}
	if s.AuthenticateStaff("staff", "12345") || s.AuthenticateStaff("Staff", "1234") {
		t.Fatalf("unexpected staff match")
	}
}

func TestIdentityStore_AuthenticateCustomer(t *testing.T) {
	s := NewIdentityStore()
	_ = s.Register("carol", "secret")

	cred, ok := s.AuthenticateCustomer("carol", "secret")
	if !ok || cred.Username != "carol" {
		t.Fatalf("expected carol, got %+v %v", cred, ok)
	}
	if _, ok := s.AuthenticateCustomer("carol", "nope"); ok {
		t.Fatalf("wrong password must fail")
	}
	if _, ok := s.AuthenticateCustomer("ghost", "secret"); ok {
		t.Fatalf("unknown user must fail")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func rejects(t *testing.T, header string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed := sign(t, "secret", jwt.MapClaims{
		"username": "alice",
		"role":     "customer",
		"sid":      "session-1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != "customer" {
			t.Fatalf("role not set")
		}
		if c.Get("sid") != "session-1" {
			t.Fatalf("sid not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rejects(t, "")
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rejects(t, "Token abc")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rejects(t, "Bearer not-a-token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	signed := sign(t, "other", jwt.MapClaims{"username": "alice", "role": "customer", "sid": "s"})
	rejects(t, "Bearer "+signed)
}

func TestAuthMiddleware_Expired(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{
		"username": "alice",
		"role":     "customer",
		"sid":      "s",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	rejects(t, "Bearer "+signed)
}

func TestAuthMiddleware_MissingSessionID(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{"username": "alice", "role": "customer"})
	rejects(t, "Bearer "+signed)
}

func TestAuthMiddleware_UnknownRole(t *testing.T) {
	signed := sign(t, "secret", jwt.MapClaims{
		"username": "alice",
		"role":     "admin",
		"sid":      "s",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	rejects(t, "Bearer "+signed)
}

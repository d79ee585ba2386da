package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweettreats/storefront/internal/api/metrics"
	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// Executor runs a storefront operation on the single event loop. Do returns
// nil only when fn ran to completion; a context error means fn never started.
type Executor interface {
	Do(ctx context.Context, op string, fn func()) error
}

// Session gives handlers serialized access to the storefront.
type Session struct {
	store ports.Storefront
	exec  Executor
}

func NewSession(store ports.Storefront, exec Executor) *Session {
	return &Session{store: store, exec: exec}
}

// Run executes fn for an authenticated request. The token's session id must
// still be the storefront's current one; a token from an earlier login or
// from before a logout is refused.
func (s *Session) Run(c echo.Context, op string, fn func(ports.Storefront) error) error {
	sid, _ := c.Get("sid").(string)
	if sid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return s.run(c, op, func(store ports.Storefront) error {
		if store.SessionID() != sid {
			return echo.NewHTTPError(http.StatusUnauthorized, "session has ended")
		}
		return fn(store)
	})
}

// RunPublic executes fn without a session check.
func (s *Session) RunPublic(c echo.Context, op string, fn func(ports.Storefront) error) error {
	return s.run(c, op, fn)
}

func (s *Session) run(c echo.Context, op string, fn func(ports.Storefront) error) error {
	var opErr error
	if err := s.exec.Do(c.Request().Context(), op, func() { opErr = fn(s.store) }); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "request cancelled before it could run")
		}
		return err
	}
	if kind := domain.KindOf(opErr); kind != "" {
		metrics.OperationsRejectedTotal.WithLabelValues(op, string(kind)).Inc()
	}
	return opErr
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// TokenIssuer signs bearer tokens for a logged-in user.
type TokenIssuer interface {
	Issue(user domain.User, sessionID string) (string, error)
}

type AuthHandler struct {
	session *Session
	tokens  TokenIssuer
}

func NewAuthHandler(session *Session, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{session: session, tokens: tokens}
}

// Register creates a customer account.
//
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.session.RunPublic(c, "register", func(s ports.Storefront) error {
		return s.Register(req.Username, req.Password)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registerResponse{Success: true, Username: req.Username})
}

// Login starts a new storefront session and returns a bearer token for it.
//
// @Summary      Login as staff or customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var (
		user      domain.User
		sessionID string
	)
	err := h.session.RunPublic(c, "login", func(s ports.Storefront) error {
		u, err := s.Login(req.Username, req.Password)
		if err != nil {
			return err
		}
		user, sessionID = u, s.SessionID()
		return nil
	})
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(user, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, User: user})
}

// Logout ends the current session. The caller's token stops working.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.session.Run(c, "logout", func(s ports.Storefront) error {
		s.Logout()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// Current returns the active user and order state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [get]
func (h *AuthHandler) Current(c echo.Context) error {
	resp := sessionResponse{Success: true}
	err := h.session.Run(c, "session", func(s ports.Storefront) error {
		if u, ok := s.CurrentUser(); ok {
			resp.User = &u
		}
		resp.State = s.State()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

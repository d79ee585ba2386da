package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweettreats/storefront/internal/api/metrics"
	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

const notifyTimeout = 2 * time.Second

// OrderHandler covers the customer side: cart, checkout and payment.
type OrderHandler struct {
	session  *Session
	notifier ports.OrderNotifier
	log      zerolog.Logger
}

// NewOrderHandler creates an OrderHandler. notifier may be nil.
func NewOrderHandler(session *Session, notifier ports.OrderNotifier, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{session: session, notifier: notifier, log: log}
}

// Cart handles GET /v1/cart.
//
// @Summary      Show the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *OrderHandler) Cart(c echo.Context) error {
	resp := cartResponse{Success: true}
	err := h.session.Run(c, "view_cart", func(s ports.Storefront) error {
		resp.Lines = s.Cart()
		resp.Subtotal = s.Subtotal()
		resp.State = s.State()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// AddLine handles POST /v1/cart/lines.
//
// @Summary      Add a catalog item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cartLineRequest  true  "Catalog item id"
// @Success      201   {object}  cartResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/lines [post]
func (h *OrderHandler) AddLine(c echo.Context) error {
	var req cartLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := cartResponse{Success: true}
	err := h.session.Run(c, "add_to_cart", func(s ports.Storefront) error {
		if _, err := s.AddToCartByID(req.ItemID); err != nil {
			return err
		}
		resp.Lines, resp.Subtotal, resp.State = s.Cart(), s.Subtotal(), s.State()
		return nil
	})
	if err != nil {
		return err
	}
	metrics.CartLinesAddedTotal.Inc()
	return c.JSON(http.StatusCreated, resp)
}

// RemoveLine handles DELETE /v1/cart/lines/:id. Only the first line with
// that item id is removed.
//
// @Summary      Remove one cart line
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Catalog item id"
// @Success      200  {object}  cartResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/cart/lines/{id} [delete]
func (h *OrderHandler) RemoveLine(c echo.Context) error {
	id := c.Param("id")
	resp := cartResponse{Success: true}
	err := h.session.Run(c, "remove_from_cart", func(s ports.Storefront) error {
		if err := s.RemoveFromCart(id); err != nil {
			return err
		}
		resp.Lines, resp.Subtotal, resp.State = s.Cart(), s.Subtotal(), s.State()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Checkout handles POST /v1/checkout.
//
// @Summary      Move the cart to payment
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkoutResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	resp := checkoutResponse{Success: true}
	err := h.session.Run(c, "checkout", func(s ports.Storefront) error {
		order, err := s.Checkout()
		if err != nil {
			return err
		}
		resp.Order, resp.State = order, s.State()
		return nil
	})
	if err != nil {
		return err
	}
	metrics.CheckoutsTotal.Inc()
	return c.JSON(http.StatusOK, resp)
}

// Pay handles POST /v1/payments. On success the receipt is also announced to
// the order notifier; a notifier failure does not fail the payment.
//
// @Summary      Pay for the checked-out cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Card details"
// @Success      200   {object}  paymentResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/payments [post]
func (h *OrderHandler) Pay(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := paymentResponse{Success: true}
	err := h.session.Run(c, "pay", func(s ports.Storefront) error {
		receipt, err := s.Pay(domain.PaymentDetails{
			CardNumber: req.CardNumber,
			Expiry:     req.Expiry,
			CVV:        req.CVV,
		})
		if err != nil {
			return err
		}
		resp.Receipt, resp.State = receipt, s.State()
		return nil
	})
	if err != nil {
		return err
	}

	metrics.PaymentsTotal.Inc()
	metrics.PaymentAmount.Observe(resp.Receipt.Total.InexactFloat64())
	h.notify(c.Request().Context(), resp.Receipt)

	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) notify(ctx context.Context, receipt domain.Receipt) {
	if h.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := h.notifier.OrderCompleted(ctx, receipt); err != nil {
		h.log.Warn().Err(err).Str("customer", receipt.Customer).Msg("failed to publish order confirmation")
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweettreats/storefront/internal/api/metrics"
	"github.com/sweettreats/storefront/internal/core/domain"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// CatalogHandler serves the item list and the staff CRUD operations. Role
// checks happen inside the storefront, not here.
type CatalogHandler struct {
	session *Session
}

func NewCatalogHandler(session *Session) *CatalogHandler {
	return &CatalogHandler{session: session}
}

// List handles GET /v1/catalog.
//
// @Summary      List catalog items
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *CatalogHandler) List(c echo.Context) error {
	var items []domain.CatalogItem
	err := h.session.RunPublic(c, "list_catalog", func(s ports.Storefront) error {
		items = s.Catalog()
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalogResponse{Success: true, Items: items})
}

// Create handles POST /v1/catalog.
//
// @Summary      Add a catalog item (staff)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      catalogItemRequest  true  "Item name and price"
// @Success      201   {object}  catalogItemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/catalog [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	req, err := bindItem(c)
	if err != nil {
		return err
	}

	var item domain.CatalogItem
	err = h.session.Run(c, "add_item", func(s ports.Storefront) error {
		if req.Price == nil {
			return domain.ErrMissingField
		}
		var err error
		item, err = s.AddItem(req.Name, *req.Price)
		return err
	})
	if err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, catalogItemResponse{Success: true, Item: item})
}

// Update handles PUT /v1/catalog/:id.
//
// @Summary      Update a catalog item (staff)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Item id"
// @Param        body  body      catalogItemRequest  true  "New name and price"
// @Success      200   {object}  catalogItemResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	req, err := bindItem(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	err = h.session.Run(c, "update_item", func(s ports.Storefront) error {
		if req.Price == nil {
			return domain.ErrMissingField
		}
		return s.UpdateItem(id, req.Name, *req.Price)
	})
	if err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, catalogItemResponse{
		Success: true,
		Item:    domain.CatalogItem{ID: id, Name: req.Name, Price: *req.Price},
	})
}

// Delete handles DELETE /v1/catalog/:id. Carts holding the item keep their copy.
//
// @Summary      Delete a catalog item (staff)
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  okResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/catalog/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	err := h.session.Run(c, "delete_item", func(s ports.Storefront) error {
		return s.DeleteItem(id)
	})
	if err != nil {
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, okResponse{Success: true})
}

// bindItem decodes a catalog item body. A missing price is reported by the
// caller as MissingField, like an empty name.
func bindItem(c echo.Context) (catalogItemRequest, error) {
	var req catalogItemRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}

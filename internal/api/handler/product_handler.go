package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/ports"
)

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	svc ports.ProductService
}

func NewProductHandler(svc ports.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		productResponse
//	@Failure	500	{object}	StatusResponse
//	@Router		/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	productResponse
//	@Failure	400	{object}	StatusResponse
//	@Failure	404	{object}	StatusResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Create godoc
//
//	@Summary		Create a product
//	@Description	Omitted fields take the configured product defaults.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		createProductRequest	true	"New product"
//	@Success		201		{object}	productResponse
//	@Failure		400		{object}	StatusResponse
//	@Failure		409		{object}	StatusResponse
//	@Router			/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.svc.Create(c.Request().Context(), toCreateProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(p))
}

// Edit godoc
//
//	@Summary		Edit a product
//	@Description	Only keys present in the body change. null clears an optional field.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Product ID"
//	@Param			body	body		editProductRequest	true	"Fields to change"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	StatusResponse
//	@Failure		404		{object}	StatusResponse
//	@Failure		409		{object}	StatusResponse
//	@Router			/products/{id} [patch]
func (h *ProductHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req editProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	p, err := h.svc.Update(c.Request().Context(), id, toProductPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Delete godoc
//
//	@Summary	Delete a product
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	StatusResponse
//	@Failure	404	{object}	StatusResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "product deleted"})
}

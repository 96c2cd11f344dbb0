package shopapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devservices/devshop/internal/catalog"
	"github.com/devservices/devshop/internal/domain"
)

func (h *API) listProducts(c echo.Context) error {
	products, err := h.products.ListAll(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching products")
	}
	if products == nil {
		// an empty catalog still serializes as [], not null
		products = []domain.Product{}
	}
	return ok(c, products)
}

func (h *API) getProduct(c echo.Context) error {
	id := c.Param("id")
	product, err := h.products.GetByID(c.Request().Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fail(c, http.StatusNotFound, "Product not found")
	case err != nil:
		zap.L().Error("failed to fetch product", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching product")
	}
	return ok(c, product)
}

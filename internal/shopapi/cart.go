package shopapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devservices/devshop/internal/cart"
	"github.com/devservices/devshop/internal/domain"
)

type cartItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type saveCartPayload struct {
	SessionID string            `json:"session_id"`
	Items     []cartItemPayload `json:"items"`
}

func (h *API) saveCart(c echo.Context) error {
	var payload saveCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid cart payload")
	}

	items := make([]domain.CartItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		if it.ProductID == "" {
			return fail(c, http.StatusBadRequest, "Item product_id is required")
		}
		if it.Quantity <= 0 {
			return fail(c, http.StatusBadRequest, "Item quantity must be a positive integer")
		}
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	sessionID, err := h.carts.Save(c.Request().Context(), payload.SessionID, items)
	if err != nil {
		zap.L().Error("failed to save cart", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error saving cart")
	}

	return ok(c, echo.Map{"status": "success", "session_id": sessionID})
}

func (h *API) getCart(c echo.Context) error {
	sessionID := c.Param("session_id")
	stored, err := h.carts.Get(c.Request().Context(), sessionID)
	switch {
	case errors.Is(err, cart.ErrNotFound):
		// a never-saved session is an empty cart, not a 404
		return ok(c, echo.Map{"items": []domain.CartItem{}})
	case err != nil:
		zap.L().Error("failed to fetch cart", zap.String("session_id", sessionID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Error fetching cart")
	}
	return ok(c, stored)
}

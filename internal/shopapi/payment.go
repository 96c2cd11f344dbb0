package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/devservices/devshop/internal/payment"
)

func (h *API) getQRCode(c echo.Context) error {
	bank := c.Param("bank")
	amount, err := cast.ToIntE(c.Param("amount"))
	if err != nil {
		return fail(c, http.StatusNotFound, "QR code not found for this bank and amount")
	}

	url, found := payment.QRURL(bank, amount)
	if !found {
		return fail(c, http.StatusNotFound, "QR code not found for this bank and amount")
	}

	return ok(c, echo.Map{"qr_url": url, "bank": bank, "amount": amount})
}

func (h *API) listBanks(c echo.Context) error {
	return ok(c, echo.Map{"banks": payment.Banks()})
}

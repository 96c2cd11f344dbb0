package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// fail emits the uniform error body. Internal causes are logged by the
// caller, never echoed to the client.
func fail(c echo.Context, status int, detail string) error {
	return c.JSON(status, echo.Map{"detail": detail})
}

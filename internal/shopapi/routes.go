package shopapi

import (
	"github.com/labstack/echo/v4"

	"github.com/devservices/devshop/internal/cart"
	"github.com/devservices/devshop/internal/catalog"
	"github.com/devservices/devshop/internal/webserver"
)

// API bundles the store dependencies of the request handlers. Stores
// are injected so tests can swap in doubles without a database.
type API struct {
	products catalog.ProductRepository
	carts    cart.Repository
}

func New(products catalog.ProductRepository, carts cart.Repository) *API {
	return &API{products: products, carts: carts}
}

// Register wires every API route onto the web server.
func (h *API) Register(ws *webserver.WebServer) {
	ws.ApiGET("/", h.root)
	ws.ApiGET("/products", h.listProducts)
	ws.ApiGET("/products/:id", h.getProduct)
	ws.ApiPOST("/cart/save", h.saveCart)
	ws.ApiGET("/cart/:session_id", h.getCart)
	ws.ApiGET("/qr-code/:bank/:amount", h.getQRCode)
	ws.ApiGET("/banks", h.listBanks)
}

func (h *API) root(c echo.Context) error {
	return ok(c, echo.Map{
		"message":        "DevShop API is running",
		"products_count": catalog.ManifestSize(),
	})
}

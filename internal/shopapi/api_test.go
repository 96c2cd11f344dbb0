package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devservices/devshop/config"
	"github.com/devservices/devshop/internal/cart"
	"github.com/devservices/devshop/internal/catalog"
	"github.com/devservices/devshop/internal/domain"
	"github.com/devservices/devshop/internal/webserver"
)

// memProducts is an in-memory catalog.ProductRepository.
type memProducts struct {
	products []domain.Product
	fail     error
}

func (r *memProducts) Count(ctx context.Context) (int64, error) {
	return int64(len(r.products)), r.fail
}

func (r *memProducts) InsertBatch(ctx context.Context, products []domain.Product) error {
	r.products = append(r.products, products...)
	return r.fail
}

func (r *memProducts) ListAll(ctx context.Context) ([]domain.Product, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return r.products, nil
}

func (r *memProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

// memCarts is an in-memory cart.Repository with the same upsert
// semantics as the Mongo implementation.
type memCarts struct {
	carts map[string]*domain.Cart
	fail  error
}

func newMemCarts() *memCarts {
	return &memCarts{carts: map[string]*domain.Cart{}}
}

func (r *memCarts) Save(ctx context.Context, sessionID string, items []domain.CartItem) (string, error) {
	if r.fail != nil {
		return "", r.fail
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	now := time.Now().UTC()
	if existing, ok := r.carts[sessionID]; ok {
		existing.Items = items
		existing.UpdatedAt = now
	} else {
		r.carts[sessionID] = &domain.Cart{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return sessionID, nil
}

func (r *memCarts) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	c, ok := r.carts[sessionID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	return c, nil
}

func (r *memCarts) Count(ctx context.Context) (int64, error) {
	return int64(len(r.carts)), r.fail
}

func (r *memCarts) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for sid, c := range r.carts {
		if c.UpdatedAt.Before(before) {
			delete(r.carts, sid)
			n++
		}
	}
	return n, r.fail
}

func newTestServer(t *testing.T, products *memProducts, carts *memCarts) *webserver.WebServer {
	t.Helper()
	cfg := &config.AppConfig{}
	cfg.Web.StaticDir = filepath.Join(t.TempDir(), "missing")
	ws := webserver.New(cfg)
	New(products, carts).Register(ws)
	return ws
}

func doRequest(ws *webserver.WebServer, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echoHeaderContentType, "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	ws.Echo().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func seededProducts() *memProducts {
	return &memProducts{products: []domain.Product{
		{ID: "id-a", Name: "A", Price: 500},
		{ID: "id-b", Name: "B", Price: 1000},
		{ID: "id-c", Name: "C", Price: 1500},
	}}
}

func TestRoot(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message       string `json:"message"`
		ProductsCount int    `json:"products_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DevShop API is running", body.Message)
	assert.Equal(t, 40, body.ProductsCount)
}

func TestListProducts(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, 500, products[0].Price)
	assert.Equal(t, "C", products[2].Name)
	assert.Equal(t, 1500, products[2].Price)
}

func TestListProductsStoreFault(t *testing.T) {
	products := seededProducts()
	products.fail = context.DeadlineExceeded
	ws := newTestServer(t, products, newMemCarts())

	rec := doRequest(ws, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
	assert.NotContains(t, rec.Body.String(), "deadline", "internal cause must not leak")
}

func TestGetProduct(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())

	rec := doRequest(ws, http.MethodGet, "/api/products/id-c", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "C", p.Name)
	assert.Equal(t, 1500, p.Price)
}

func TestGetProductUnknownID(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/products/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestSaveCartGeneratesSessionID(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())

	rec := doRequest(ws, http.MethodPost, "/api/cart/save",
		`{"items":[{"product_id":"id-a","quantity":2}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string `json:"status"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.NotEmpty(t, body.SessionID)

	rec = doRequest(ws, http.MethodGet, "/api/cart/"+body.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "id-a", stored.Items[0].ProductID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestSaveCartReplacesItems(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	sid := uuid.NewString()

	rec := doRequest(ws, http.MethodPost, "/api/cart/save",
		`{"session_id":"`+sid+`","items":[{"product_id":"id-a","quantity":2},{"product_id":"id-b","quantity":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// a second save fully replaces the item list, no merge
	rec = doRequest(ws, http.MethodPost, "/api/cart/save",
		`{"session_id":"`+sid+`","items":[{"product_id":"id-c","quantity":5}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(ws, http.MethodGet, "/api/cart/"+sid, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "id-c", stored.Items[0].ProductID)
	assert.Equal(t, 5, stored.Items[0].Quantity)
}

func TestSaveCartAcceptsDanglingProductIDs(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodPost, "/api/cart/save",
		`{"items":[{"product_id":"no-such-product","quantity":1}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveCartValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero quantity", `{"items":[{"product_id":"id-a","quantity":0}]}`},
		{"negative quantity", `{"items":[{"product_id":"id-a","quantity":-1}]}`},
		{"missing product id", `{"items":[{"quantity":1}]}`},
		{"malformed json", `{"items":[`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newTestServer(t, seededProducts(), newMemCarts())
			rec := doRequest(ws, http.MethodPost, "/api/cart/save", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetCartUnknownSessionIsEmptyNotMissing(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/cart/"+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []domain.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Items)
	assert.Empty(t, body.Items)
}

func TestGetCartStoreFault(t *testing.T) {
	carts := newMemCarts()
	carts.fail = context.DeadlineExceeded
	ws := newTestServer(t, seededProducts(), carts)

	rec := doRequest(ws, http.MethodGet, "/api/cart/some-session", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetQRCode(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())

	rec := doRequest(ws, http.MethodGet, "/api/qr-code/sber/1000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		QRURL  string `json:"qr_url"`
		Bank   string `json:"bank"`
		Amount int    `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://b2b.cbrpay.ru/AS2B001EJU9ICOR482KB5FQKK7AUG8Q5", body.QRURL)
	assert.Equal(t, "sber", body.Bank)
	assert.Equal(t, 1000, body.Amount)
}

func TestGetQRCodeMisses(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unlisted amount", "/api/qr-code/sber/999999"},
		{"unknown bank", "/api/qr-code/unknownbank/1000"},
		{"non-integer amount", "/api/qr-code/sber/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newTestServer(t, seededProducts(), newMemCarts())
			rec := doRequest(ws, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "QR code not found")
		})
	}
}

func TestListBanks(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/banks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Banks map[string]domain.Bank `json:"banks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Banks, 4)
	assert.Equal(t, "Т-Банк", body.Banks["tbank"].Name)
}

func TestUnknownAPIRouteIs404(t *testing.T) {
	ws := newTestServer(t, seededProducts(), newMemCarts())
	rec := doRequest(ws, http.MethodGet, "/api/not-a-real-route", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "API endpoint not found")
	assert.NotContains(t, rec.Body.String(), "<html", "API misses must never serve the SPA shell")
}

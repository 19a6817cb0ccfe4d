package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tienda/internal/banks"
	"tienda/internal/gateway"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories/cache"
	"tienda/internal/routes"
	"tienda/internal/services/cart"
	"tienda/internal/services/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu       sync.Mutex
	srv      *httptest.Server
	calls    []string
	orderErr string // when set, /orders answers 400 with this detail
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, r.URL.Path)
		fail := b.orderErr
		b.mu.Unlock()

		switch r.URL.Path {
		case "/orders":
			if fail != "" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": fail})
				return
			}
			_, _ = w.Write([]byte(`{"id": 42}`))
		case "/payments":
			_, _ = w.Write([]byte(`{"status": "approved"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	copy(out, b.calls)
	return out
}

func newTestApp(t *testing.T, backend *fakeBackend) (*fiber.App, cart.Service) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStore := cache.NewMemoryTokenStore()
	registry := banks.NewRegistry()
	cartService := cart.NewService()
	checkoutService := checkout.NewService(
		registry, cartService, gateway.NewClient(backend.srv.URL), tokenStore, nil, nil,
	)

	app := fiber.New()
	routes.SetupRoutes(app, routes.Dependencies{
		Registry: registry,
		Checkout: checkoutService,
		Cart:     cartService,
		Auth:     middleware.NewAuthMiddleware(tokenStore, nil),
	})
	return app, cartService
}

func mintToken(t *testing.T) string {
	t.Helper()
	claims := &models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 1,
		Email:  "ana@example.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", middleware.SessionCookie+"=test-session")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestCheckout_EmptyCartRedirects(t *testing.T) {
	app, _ := newTestApp(t, newFakeBackend(t))

	resp, body := doJSON(t, app, http.MethodGet, "/api/checkout", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/products", body["redirect"])
}

func TestCheckout_SelectBankWithoutUserOpensAuthPrompt(t *testing.T) {
	backend := newFakeBackend(t)
	app, cartSvc := newTestApp(t, backend)
	cartSvc.Add("test-session", models.CartItem{ID: 1, Price: 10, Quantity: 1})

	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/bank", "",
		map[string]string{"bank_id": "bank_b"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, true, body["auth_required"])
	assert.Equal(t, "Inicia sesión para continuar con tu compra", body["error"])
	assert.Empty(t, backend.paths())

	// Selection stayed empty.
	_, view := doJSON(t, app, http.MethodGet, "/api/checkout", "", nil)
	assert.Equal(t, "selecting_bank", view["step"])
	assert.Nil(t, view["selected_bank"])
}

func TestCheckout_FullFlow(t *testing.T) {
	backend := newFakeBackend(t)
	app, _ := newTestApp(t, backend)
	token := mintToken(t)

	// Fill the cart.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/cart", "",
		models.CartItem{ID: 7, Name: "Teclado", Price: 59.90, Quantity: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The checkout renders the bank grid.
	_, view := doJSON(t, app, http.MethodGet, "/api/checkout", "", nil)
	require.Equal(t, "selecting_bank", view["step"])
	require.Len(t, view["banks"], 3)

	// Pick CiensPay while logged in.
	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/bank", token,
		map[string]string{"bank_id": "bank_b"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	require.Equal(t, "entering_card", data["step"])

	// Submit the card. No Authorization header this time: the token was
	// persisted for the session when the bank was selected.
	resp, body = doJSON(t, app, http.MethodPost, "/api/checkout/pay", "",
		map[string]string{
			"card_number": "4111111111111111",
			"card_expiry": "1225",
			"card_cvv":    "123",
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "CiensPay")
	receipt := body["data"].(map[string]any)
	assert.Equal(t, "42", receipt["order_id"])
	assert.Equal(t, "/dashboard", receipt["redirect"])

	// Order first, payment second.
	assert.Equal(t, []string{"/orders", "/payments"}, backend.paths())

	// Cart emptied; checkout redirects away again.
	_, cartBody := doJSON(t, app, http.MethodGet, "/api/cart", "", nil)
	assert.Empty(t, cartBody["items"])
	_, view = doJSON(t, app, http.MethodGet, "/api/checkout", "", nil)
	assert.Equal(t, "/products", view["redirect"])
}

func TestCheckout_OrderRejectionSurfacesDetail(t *testing.T) {
	backend := newFakeBackend(t)
	backend.orderErr = "saldo insuficiente"
	app, cartSvc := newTestApp(t, backend)
	cartSvc.Add("test-session", models.CartItem{ID: 1, Price: 10, Quantity: 1})
	token := mintToken(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/checkout/bank", token,
		map[string]string{"bank_id": "bank_a"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/pay", token,
		map[string]string{"card_number": "4111111111111111", "card_expiry": "1225", "card_cvv": "123"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "saldo insuficiente", body["error"])
	assert.Equal(t, []string{"/orders"}, backend.paths())

	// Cart kept for another attempt.
	assert.Len(t, cartSvc.Items("test-session"), 1)
}

func TestCheckout_PayWithoutBankSelected(t *testing.T) {
	backend := newFakeBackend(t)
	app, cartSvc := newTestApp(t, backend)
	cartSvc.Add("test-session", models.CartItem{ID: 1, Price: 10, Quantity: 1})

	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/pay", mintToken(t),
		map[string]string{"card_number": "4111111111111111"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Por favor selecciona un banco", body["error"])
	assert.Empty(t, backend.paths())
}

func TestBanks_ListsRegistry(t *testing.T) {
	app, _ := newTestApp(t, newFakeBackend(t))

	resp, body := doJSON(t, app, http.MethodGet, "/api/banks", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["banks"], 3)
}

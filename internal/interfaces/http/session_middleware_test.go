package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/usecase"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/infrastructure/pdf"
	"github.com/ecomarket/storefront-api/internal/infrastructure/refdata"
	"github.com/ecomarket/storefront-api/internal/infrastructure/sessionstore"
	apphttp "github.com/ecomarket/storefront-api/internal/interfaces/http"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

// buildTestApp monta la API completa contra stores en memoria, con el mismo
// cableado que cmd/api.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	mgr := sessionstore.NewManager(time.Hour)
	t.Cleanup(mgr.Close)

	lib := refdata.NewLibrary(
		[]entity.Product{{ID: "p1", Name: "Эко-бутылка", Price: 100}},
		[]entity.PickupPoint{{ID: "main", DisplayName: "Главный корпус", Address: "ул. Ленина, 1"}},
		[]entity.User{
			{ID: "u-anna", Name: "Анна", Email: "anna@edu.example.ru", Password: "anna123", Role: entity.RoleStudent, BonusBalance: 1000},
			{ID: "u-oper", Name: "Оператор", Email: "operator@ecomarket.example.ru", Password: "operator123", Role: entity.RoleOperator},
		},
		nil,
	)

	log := logger.Nop()
	cartRepo := sessionstore.NewCartRepository(mgr)
	userRepo := sessionstore.NewUserRepository(mgr, lib, log)
	orderRepo := sessionstore.NewOrderRepository(mgr)
	depositRepo := sessionstore.NewDepositRepository(mgr, lib, log)
	profileRepo := sessionstore.NewProfileRepository(mgr)

	authUC := auth.NewAuthUseCase(userRepo, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(lib),
		CartUC:    usecase.NewCartUseCase(cartRepo, lib, log),
		OrderUC:   usecase.NewOrderUseCase(orderRepo, cartRepo, lib, profileRepo, authUC, pdf.NewMarotoReceiptGenerator(), log),
		DepositUC: usecase.NewDepositUseCase(depositRepo, authUC, log),
		ProfileUC: usecase.NewProfileUseCase(profileRepo),
		AuthUC:    authUC,
		Session:   apphttp.SessionConfig{Secret: testSecret, Issuer: "test", TTLMinutes: 60},
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// newSession abre una sesión nueva contra la API y devuelve su token.
func newSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/api/cart", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := resp.Header.Get(apphttp.HeaderSessionToken)
	require.NotEmpty(t, token, "una petición sin token debe recibir uno nuevo")
	return token
}

func loginAs(t *testing.T, app *fiber.App, token, email, password string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", token, fiber.Map{
		"email": email, "password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_TokenReutilizaLaSesion(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)

	// Mutación con el token...
	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", token, fiber.Map{"product_id": "p1"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// ...y lectura con el mismo token ve el estado.
	resp = doJSON(t, app, http.MethodGet, "/api/cart", token, nil)
	defer resp.Body.Close()
	var cart struct {
		TotalItems int64 `json:"total_items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	assert.Equal(t, int64(1), cart.TotalItems)
}

func TestSession_SinToken_SesionNueva(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", token, fiber.Map{"product_id": "p1"})
	resp.Body.Close()

	// Una petición sin token no ve el carrito de la otra pestaña.
	resp = doJSON(t, app, http.MethodGet, "/api/cart", "", nil)
	defer resp.Body.Close()
	var cart struct {
		TotalItems int64 `json:"total_items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))
	assert.Equal(t, int64(0), cart.TotalItems)
	assert.NotEqual(t, token, resp.Header.Get(apphttp.HeaderSessionToken))
}

func TestSession_TokenInvalido_SesionNueva(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/cart", "token.invalido.aqui", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "un token inválido no es un error, abre sesión nueva")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderSessionToken))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireUser_AnonimoBloqueado(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/orders", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUser_AutenticadoPasa(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)
	loginAs(t, app, token, "anna@edu.example.ru", "anna123")

	resp := doJSON(t, app, http.MethodGet, "/api/orders", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireOperator_EstudianteBloqueado(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)
	loginAs(t, app, token, "anna@edu.example.ru", "anna123")

	resp := doJSON(t, app, http.MethodGet, "/api/operator/students", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireOperator_OperadorPasa(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)
	loginAs(t, app, token, "operator@ecomarket.example.ru", "operator123")

	resp := doJSON(t, app, http.MethodPost, "/api/operator/deposits", token, fiber.Map{
		"user_id": "u-anna", "plastic_type": "PET", "weight": 2.5,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		BonusAmount int64 `json:"bonus_amount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(25), out.BonusAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_FlujoHTTP(t *testing.T) {
	app := buildTestApp(t)
	token := newSession(t, app)
	loginAs(t, app, token, "anna@edu.example.ru", "anna123")

	resp := doJSON(t, app, http.MethodPost, "/api/cart/items", token, fiber.Map{"product_id": "p1"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/orders/quote", token, fiber.Map{"bonus_requested": 1000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quote struct {
		MaxBonus   int64 `json:"max_bonus"`
		FinalPrice int64 `json:"final_price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
	resp.Body.Close()
	assert.Equal(t, int64(90), quote.MaxBonus)
	assert.Equal(t, int64(10), quote.FinalPrice)

	resp = doJSON(t, app, http.MethodPost, "/api/orders", token, fiber.Map{
		"full_name":      "Анна",
		"phone":          "+7 900 000-00-00",
		"email":          "anna@edu.example.ru",
		"pickup_point":   "main",
		"payment_method": "bonus",
		"bonus_used":     90,
		"agree_terms":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order struct {
		ID          string `json:"id"`
		OrderNumber string `json:"order_number"`
		FinalPrice  int64  `json:"final_price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()
	assert.Regexp(t, `^ECO-\d{8}$`, order.OrderNumber)
	assert.Equal(t, int64(10), order.FinalPrice)

	// El comprobante PDF se descarga por el id del pedido.
	resp = doJSON(t, app, http.MethodGet, "/api/orders/"+order.ID+"/receipt", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

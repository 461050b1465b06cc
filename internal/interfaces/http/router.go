package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	CartUC    *usecase.CartUseCase
	OrderUC   *usecase.OrderUseCase
	DepositUC *usecase.DepositUseCase
	ProfileUC *usecase.ProfileUseCase
	AuthUC    *auth.AuthUseCase
	Session   SessionConfig
}

// Router registra las rutas de la API. Toda /api pasa por el middleware de
// sesión: cada petición tiene siempre una sesión (nueva o reanudada), y la
// autenticación de usuario es estado DENTRO de esa sesión, no del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Session))

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:id", catalogHandler.GetByID)
	api.Get("/pickup-points", catalogHandler.PickupPoints)

	// Auth (público: login/registro crean el estado dentro de la sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Carrito (por sesión; también para anónimos)
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:id", cartHandler.ChangeQuantity)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Pedidos: la cotización es pública (muestra el tope aunque no haya
	// sesión iniciada), confirmar y consultar exige usuario.
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/quote", orderHandler.Quote)
	orders.Post("/", RequireUser(deps.AuthUC), orderHandler.Create)
	orders.Get("/", RequireUser(deps.AuthUC), orderHandler.List)
	orders.Get("/:id/receipt", RequireUser(deps.AuthUC), orderHandler.Receipt)

	// Perfil (requiere usuario)
	profile := api.Group("/profile", RequireUser(deps.AuthUC))
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)

	// Panel del operador (requiere rol operator)
	operator := api.Group("/operator", RequireOperator(deps.AuthUC))
	depositHandler := NewDepositHandler(deps.DepositUC, deps.AuthUC)
	operator.Post("/deposits", depositHandler.Create)
	operator.Get("/deposits", depositHandler.List)
	operator.Get("/students", depositHandler.Students)
}

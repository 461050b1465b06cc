package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/usecase"
	infrapdf "github.com/ecomarket/storefront-api/internal/infrastructure/pdf"
	"github.com/ecomarket/storefront-api/internal/infrastructure/refdata"
	"github.com/ecomarket/storefront-api/internal/infrastructure/sessionstore"
	httpRouter "github.com/ecomarket/storefront-api/internal/interfaces/http"
	"github.com/ecomarket/storefront-api/pkg/config"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Datos de referencia estáticos: catálogo, puntos de entrega y semillas
	// de usuarios/depósitos para cada sesión nueva.
	library := refdata.Load(cfg.Data.Dir, log)

	// Un store de estado por sesión de pestaña; al vencer el TTL la sesión
	// se descarta completa.
	manager := sessionstore.NewManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	defer manager.Close()

	cartRepo := sessionstore.NewCartRepository(manager)
	userRepo := sessionstore.NewUserRepository(manager, library, log)
	orderRepo := sessionstore.NewOrderRepository(manager)
	depositRepo := sessionstore.NewDepositRepository(manager, library, log)
	profileRepo := sessionstore.NewProfileRepository(manager)

	authUC := auth.NewAuthUseCase(userRepo, log)
	catalogUC := usecase.NewCatalogUseCase(library)
	cartUC := usecase.NewCartUseCase(cartRepo, library, log)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	orderUC := usecase.NewOrderUseCase(orderRepo, cartRepo, library, profileRepo, authUC, receiptGen, log)
	depositUC := usecase.NewDepositUseCase(depositRepo, authUC, log)
	profileUC := usecase.NewProfileUseCase(profileRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EcoMarket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         cfg.App.Name,
			"active_sessions": manager.Active(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		OrderUC:   orderUC,
		DepositUC: depositUC,
		ProfileUC: profileUC,
		AuthUC:    authUC,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.Session.Secret,
			Issuer:     cfg.Session.Issuer,
			TTLMinutes: cfg.Session.TTLMinutes,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

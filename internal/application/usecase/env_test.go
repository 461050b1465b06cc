package usecase_test

import (
	"testing"
	"time"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/usecase"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/infrastructure/pdf"
	"github.com/ecomarket/storefront-api/internal/infrastructure/refdata"
	"github.com/ecomarket/storefront-api/internal/infrastructure/sessionstore"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

// env monta la tienda completa en memoria: manager de sesiones, datos de
// referencia fijos y todos los casos de uso cableados igual que en main.
type env struct {
	auth     *auth.AuthUseCase
	cart     *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	deposits *usecase.DepositUseCase
	profiles *usecase.ProfileUseCase

	depositRepo *sessionstore.DepositRepo
}

const sid = "sesion-de-prueba"

func newEnv(t *testing.T) *env {
	t.Helper()

	mgr := sessionstore.NewManager(time.Hour)
	t.Cleanup(mgr.Close)

	lib := refdata.NewLibrary(
		[]entity.Product{
			{ID: "p1", Name: "Эко-бутылка", Price: 100, Icon: "🍶"},
			{ID: "p2", Name: "Авоська", Price: 50, Icon: "🛍️"},
		},
		[]entity.PickupPoint{
			{ID: "main", DisplayName: "Главный корпус", Address: "ул. Ленина, 1", WorkingHours: "9:00–18:00"},
		},
		[]entity.User{
			{ID: "u-anna", Name: "Анна Смирнова", Email: "anna@edu.example.ru", Password: "anna123", Role: entity.RoleStudent, BonusBalance: 1000},
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
	return &env{
		auth:        authUC,
		cart:        usecase.NewCartUseCase(cartRepo, lib, log),
		orders:      usecase.NewOrderUseCase(orderRepo, cartRepo, lib, profileRepo, authUC, pdf.NewMarotoReceiptGenerator(), log),
		deposits:    usecase.NewDepositUseCase(depositRepo, authUC, log),
		profiles:    usecase.NewProfileUseCase(profileRepo),
		depositRepo: depositRepo,
	}
}

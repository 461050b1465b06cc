package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomarket/storefront-api/internal/application/auth"
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/infrastructure/refdata"
	"github.com/ecomarket/storefront-api/internal/infrastructure/sessionstore"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSessionID  = "sesion-de-prueba-1"
	otherSessionID = "sesion-de-prueba-2"
)

func seedUsers() []entity.User {
	return []entity.User{
		{
			ID:           "u-anna",
			Name:         "Анна Смирнова",
			Email:        "anna@edu.example.ru",
			Password:     "anna123",
			Role:         entity.RoleStudent,
			BonusBalance: 1000,
		},
		{
			ID:       "u-oper",
			Name:     "Оператор",
			Email:    "operator@ecomarket.example.ru",
			Password: "operator123",
			Role:     entity.RoleOperator,
		},
	}
}

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	mgr := sessionstore.NewManager(time.Hour)
	t.Cleanup(mgr.Close)
	lib := refdata.NewLibrary(nil, nil, seedUsers(), nil)
	users := sessionstore.NewUserRepository(mgr, lib, logger.Nop())
	return auth.NewAuthUseCase(users, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(testSessionID, dto.LoginRequest{Email: "anna@edu.example.ru", Password: "anna123"})
	require.NoError(t, err)
	assert.Equal(t, "u-anna", out.ID)
	assert.Equal(t, int64(1000), out.BonusBalance)
	assert.Equal(t, entity.RoleStudent, out.Role)

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated(), "login debe dejar al usuario en sesión")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	uc := newAuthUC(t)

	// La comparación es exacta y sensible a mayúsculas.
	_, err := uc.Login(testSessionID, dto.LoginRequest{Email: "anna@edu.example.ru", Password: "ANNA123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated(), "un login fallido no debe tocar la sesión")
}

func TestLogin_SesionesAisladas(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(testSessionID, dto.LoginRequest{Email: "anna@edu.example.ru", Password: "anna123"})
	require.NoError(t, err)

	other, err := uc.CurrentUser(otherSessionID)
	require.NoError(t, err)
	assert.False(t, other.IsAuthenticated(), "el login de una pestaña no debe verse en otra")
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaEstudianteConAutoLogin(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Register(testSessionID, dto.RegisterRequest{
		FullName: "Новый Студент",
		Email:    "nuevo@edu.example.ru",
		Password: "secreto1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleStudent, out.Role)
	assert.Equal(t, int64(0), out.BonusBalance, "un estudiante nuevo empieza con 0 puntos")

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	u, ok := session.User()
	require.True(t, ok, "el registro debe dejar la sesión autenticada")
	assert.Equal(t, out.ID, u.ID)
}

func TestRegister_EmailDuplicado_NoMuta(t *testing.T) {
	uc := newAuthUC(t)

	before, err := uc.ListStudents(testSessionID)
	require.NoError(t, err)

	_, err = uc.Register(testSessionID, dto.RegisterRequest{
		FullName: "Impostora",
		Email:    "anna@edu.example.ru",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	after, err := uc.ListStudents(testSessionID)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "un registro rechazado no debe tocar la lista")

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / balance
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DejaSesionAnonima(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(testSessionID, dto.LoginRequest{Email: "anna@edu.example.ru", Password: "anna123"})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(testSessionID))

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestUpdateBalance_ReflejaEnSesion(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(testSessionID, dto.LoginRequest{Email: "anna@edu.example.ru", Password: "anna123"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateBalance(testSessionID, "u-anna", 775))

	session, err := uc.CurrentUser(testSessionID)
	require.NoError(t, err)
	u, ok := session.User()
	require.True(t, ok)
	assert.Equal(t, int64(775), u.BonusBalance, "el nuevo balance debe verse en la sesión sin re-login")

	full, err := uc.FindUser(testSessionID, "u-anna")
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.Equal(t, int64(775), full.BonusBalance)
}

func TestUpdateBalance_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t)
	err := uc.UpdateBalance(testSessionID, "no-existe", 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListStudents_ExcluyeOperador(t *testing.T) {
	uc := newAuthUC(t)

	students, err := uc.ListStudents(testSessionID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "u-anna", students[0].ID)
}

// Package auth implementa el directorio de usuarios y la sesión actual:
// login, registro con auto-login, logout y la vía de liquidación de balance
// que comparten pedidos y depósitos.
package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

// AuthUseCase casos de uso del directorio de usuarios y la sesión.
type AuthUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
	now   func() time.Time
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, log: log, now: time.Now}
}

// Login compara email y contraseña con igualdad exacta (sensible a
// mayúsculas) contra la lista de usuarios. En éxito escribe la proyección
// sin contraseña como currentUser. Sin coincidencia devuelve
// domain.ErrUnauthorized; nunca entra en pánico hacia el caller.
func (uc *AuthUseCase) Login(sessionID string, in dto.LoginRequest) (*dto.SessionUserResponse, error) {
	users, err := uc.users.List(sessionID)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email && u.Password == in.Password {
			su := entity.ProjectUser(u)
			if err := uc.users.SetCurrent(sessionID, su); err != nil {
				return nil, err
			}
			uc.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("login correcto")
			return toSessionUserResponse(su), nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// Register crea un usuario nuevo y lo deja autenticado (auto-login).
// Devuelve domain.ErrEmailAlreadyExists si el email ya está en la lista;
// en ese caso la lista no se modifica.
func (uc *AuthUseCase) Register(sessionID string, in dto.RegisterRequest) (*dto.SessionUserResponse, error) {
	users, err := uc.users.List(sessionID)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	now := uc.now()
	user := entity.User{
		ID:               uuid.New().String(),
		Name:             in.FullName,
		Email:            in.Email,
		Password:         in.Password,
		Role:             entity.RoleStudent,
		BonusBalance:     0,
		RegistrationDate: now.Format("2006-01-02"),
	}
	users = append(users, user)
	if err := uc.users.SaveAll(sessionID, users); err != nil {
		return nil, err
	}
	su := entity.ProjectUser(user)
	if err := uc.users.SetCurrent(sessionID, su); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("usuario registrado con auto-login")
	return toSessionUserResponse(su), nil
}

// Logout borra currentUser. El carrito sobrevive al logout por diseño.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.users.ClearCurrent(sessionID)
}

// CurrentUser devuelve la sesión como tipo suma Anonymous | Authenticated.
func (uc *AuthUseCase) CurrentUser(sessionID string) (entity.Session, error) {
	su, err := uc.users.Current(sessionID)
	if err != nil {
		return entity.Anonymous(), err
	}
	if su == nil {
		return entity.Anonymous(), nil
	}
	return entity.Authenticated(*su), nil
}

// UpdateBalance sobrescribe el balance del usuario y, si coincide con el
// usuario en sesión, refleja el nuevo balance en la proyección currentUser
// para que la UI quede consistente sin re-login. Es la vía única de
// liquidación: la usan el débito del checkout y la acreditación de depósitos.
func (uc *AuthUseCase) UpdateBalance(sessionID, userID string, newBalance int64) error {
	users, err := uc.users.List(sessionID)
	if err != nil {
		return err
	}
	idx := -1
	for i, u := range users {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrUserNotFound
	}
	users[idx].BonusBalance = newBalance
	if err := uc.users.SaveAll(sessionID, users); err != nil {
		return err
	}
	current, err := uc.users.Current(sessionID)
	if err != nil {
		return err
	}
	if current != nil && current.ID == userID {
		current.BonusBalance = newBalance
		if err := uc.users.SetCurrent(sessionID, *current); err != nil {
			return err
		}
	}
	return nil
}

// FindUser devuelve el usuario completo por id, o nil si no existe.
func (uc *AuthUseCase) FindUser(sessionID, userID string) (*entity.User, error) {
	users, err := uc.users.List(sessionID)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, nil
}

// ListStudents devuelve los usuarios con rol student (panel del operador).
func (uc *AuthUseCase) ListStudents(sessionID string) ([]dto.UserSummaryResponse, error) {
	users, err := uc.users.List(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummaryResponse, 0, len(users))
	for _, u := range users {
		if u.Role != entity.RoleStudent {
			continue
		}
		out = append(out, dto.UserSummaryResponse{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			BonusBalance: u.BonusBalance,
		})
	}
	return out, nil
}

func toSessionUserResponse(su entity.SessionUser) *dto.SessionUserResponse {
	return &dto.SessionUserResponse{
		ID:           su.ID,
		Name:         su.Name,
		Email:        su.Email,
		Role:         su.Role,
		BonusBalance: su.BonusBalance,
	}
}

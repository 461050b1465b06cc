package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// UserRepository puerto del directorio de usuarios y de la sesión actual.
// List carga la lista cacheada del store o, en el primer acceso, la semilla
// de referencia (fallo suave: lista vacía si la carga falla).
type UserRepository interface {
	List(sessionID string) ([]entity.User, error)
	SaveAll(sessionID string, users []entity.User) error
	// Current devuelve nil si la sesión es anónima.
	Current(sessionID string) (*entity.SessionUser, error)
	SetCurrent(sessionID string, u entity.SessionUser) error
	ClearCurrent(sessionID string) error
}

// SeedSource origen de los datos de referencia que se cachean en el store
// en el primer acceso de cada sesión.
type SeedSource interface {
	SeedUsers() []entity.User
	SeedDeposits() []entity.Deposit
}

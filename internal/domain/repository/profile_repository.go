package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// ProfileRepository puerto de los datos auxiliares de perfil que el demo
// original guardaba sueltos en el store (userProfileData, userPhone).
type ProfileRepository interface {
	// Profile devuelve nil si la sesión no guardó datos de perfil.
	Profile(sessionID string) (*entity.Profile, error)
	SaveProfile(sessionID string, p entity.Profile) error
	Phone(sessionID string) (string, error)
	SavePhone(sessionID, phone string) error
}

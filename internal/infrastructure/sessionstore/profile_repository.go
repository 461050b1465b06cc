package sessionstore

import (
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre el store.
type ProfileRepo struct {
	mgr *Manager
}

// NewProfileRepository construye el adaptador de perfil.
func NewProfileRepository(mgr *Manager) *ProfileRepo {
	return &ProfileRepo{mgr: mgr}
}

// Profile devuelve los datos de perfil o nil si nunca se guardaron.
func (r *ProfileRepo) Profile(sessionID string) (*entity.Profile, error) {
	var p entity.Profile
	ok, err := r.mgr.Store(sessionID).Get(KeyProfileData, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SaveProfile guarda los datos de perfil.
func (r *ProfileRepo) SaveProfile(sessionID string, p entity.Profile) error {
	return r.mgr.Store(sessionID).Set(KeyProfileData, p)
}

// Phone devuelve el teléfono recordado del último checkout ("" si no hay).
func (r *ProfileRepo) Phone(sessionID string) (string, error) {
	var phone string
	if _, err := r.mgr.Store(sessionID).Get(KeyUserPhone, &phone); err != nil {
		return "", err
	}
	return phone, nil
}

// SavePhone recuerda el teléfono para futuros pedidos.
func (r *ProfileRepo) SavePhone(sessionID, phone string) error {
	return r.mgr.Store(sessionID).Set(KeyUserPhone, phone)
}

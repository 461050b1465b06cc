package usecase

import (
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
)

// ProfileUseCase datos de perfil y teléfono recordado, usados para
// autocompletar el formulario del checkout.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profiles repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// Get devuelve el perfil guardado (campos vacíos si nunca se guardó).
func (uc *ProfileUseCase) Get(sessionID string) (*dto.ProfileResponse, error) {
	out := &dto.ProfileResponse{}
	p, err := uc.profiles.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		out.FullName = p.FullName
		out.Group = p.Group
	}
	phone, err := uc.profiles.Phone(sessionID)
	if err != nil {
		return nil, err
	}
	out.Phone = phone
	return out, nil
}

// Update guarda el perfil y, si viene, el teléfono.
func (uc *ProfileUseCase) Update(sessionID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := uc.profiles.SaveProfile(sessionID, entity.Profile{
		FullName: in.FullName,
		Group:    in.Group,
	}); err != nil {
		return nil, err
	}
	if in.Phone != "" {
		if err := uc.profiles.SavePhone(sessionID, in.Phone); err != nil {
			return nil, err
		}
	}
	return uc.Get(sessionID)
}

package dto

// ProfileResponse datos de perfil guardados más el teléfono recordado.
type ProfileResponse struct {
	FullName string `json:"full_name"`
	Group    string `json:"group,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateProfileRequest entrada para guardar el perfil.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Group    string `json:"group" validate:"omitempty,max=50"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

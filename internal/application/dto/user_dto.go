package dto

// LoginRequest entrada para login: comparación exacta y sensible a
// mayúsculas contra la lista de usuarios.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro de un estudiante nuevo.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionUserResponse proyección del usuario en sesión (sin contraseña).
type SessionUserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BonusBalance int64  `json:"bonus_balance"`
}

// SessionResponse estado de la sesión actual. Una sesión anónima es un
// estado normal, no un error: Authenticated=false y User=nil.
type SessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *SessionUserResponse `json:"user,omitempty"`
}

// UserSummaryResponse fila del panel del operador.
type UserSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BonusBalance int64  `json:"bonus_balance"`
}

package entity

// SessionUser es la proyección reducida de User que se guarda como
// currentUser: nunca incluye la contraseña.
type SessionUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BonusBalance int64  `json:"bonusBalance"`
}

// ProjectUser reduce un User a su proyección de sesión.
func ProjectUser(u User) SessionUser {
	return SessionUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		BonusBalance: u.BonusBalance,
	}
}

// Session modela el estado de autenticación de una pestaña como tipo suma
// explícito: Anonymous o Authenticated(user). Sustituye al "currentUser o
// null" ambiente del demo original.
type Session struct {
	user *SessionUser
}

// Anonymous devuelve la sesión sin usuario.
func Anonymous() Session {
	return Session{}
}

// Authenticated devuelve una sesión con el usuario indicado.
func Authenticated(u SessionUser) Session {
	return Session{user: &u}
}

// IsAuthenticated indica si hay un usuario en la sesión.
func (s Session) IsAuthenticated() bool {
	return s.user != nil
}

// User devuelve la proyección del usuario y ok=false si la sesión es anónima.
func (s Session) User() (SessionUser, bool) {
	if s.user == nil {
		return SessionUser{}, false
	}
	return *s.user, true
}

// IsOperator indica si la sesión pertenece a un operador.
func (s Session) IsOperator() bool {
	return s.user != nil && s.user.Role == RoleOperator
}

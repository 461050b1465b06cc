package entity

// Roles válidos para User.
const (
	RoleStudent  = "student"
	RoleOperator = "operator"
)

// User representa un usuario conocido por la tienda demo.
// La lista completa vive en el store de sesión bajo demoUsers; la contraseña
// se guarda en claro porque la "autenticación" es una comparación exacta
// contra los datos de referencia (demo sin seguridad real, por contrato).
type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"` // único dentro de la lista
	Password         string `json:"password"`
	Role             string `json:"role"`         // student, operator
	BonusBalance     int64  `json:"bonusBalance"` // puntos, >= 0
	RegistrationDate string `json:"registrationDate,omitempty"`
}

package entity

// Profile son los datos de perfil que el usuario rellena una vez y la tienda
// reutiliza para autocompletar el checkout.
type Profile struct {
	FullName string `json:"fullName"`
	Group    string `json:"group,omitempty"` // grupo académico del estudiante
}

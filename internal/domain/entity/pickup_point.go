package entity

import "fmt"

// PickupPoint es un punto de entrega fijo. Configuración estática: se usa
// solo para la selección en el checkout y nunca se muta.
type PickupPoint struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
	Contact      string `json:"contact"`
}

// FullName devuelve el nombre completo para mostrar, ej. "Главный корпус (ул. Ленина, 1)".
func (p PickupPoint) FullName() string {
	return fmt.Sprintf("%s (%s)", p.DisplayName, p.Address)
}

package entity

import "time"

// Deposit registra una entrega de plástico que acredita puntos a un usuario.
// Comparte el patrón de liquidación del pedido: el registro se agrega a la
// colección y el balance del usuario se ajusta por la misma vía.
type Deposit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	PlasticType string    `json:"plasticType"`
	Weight      float64   `json:"weight"` // kilogramos
	BonusAmount int64     `json:"bonusAmount"`
	Date        time.Time `json:"date"`
}

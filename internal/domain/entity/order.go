package entity

import "time"

// Estados de un pedido. El núcleo solo crea pedidos en StatusPending; el
// avance de estado pertenece al flujo externo del operador.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
)

// Métodos de pago aceptados en el checkout.
const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentBonus = "bonus"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentBonus
}

// Order es el registro inmutable creado al finalizar la compra.
// Tras su creación solo Status puede cambiar (fuera del núcleo).
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"` // formato externo: ECO-XXXXXXXX
	UserID        string     `json:"userId"`
	UserName      string     `json:"userName"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	PickupPoint   string     `json:"pickupPoint"` // id del punto de entrega
	PaymentMethod string     `json:"paymentMethod"`
	Comment       string     `json:"comment,omitempty"`
	BonusUsed     int64      `json:"bonusUsed"` // puntos canjeados, >= 0
	Items         []CartLine `json:"items"`     // snapshot del carrito
	Subtotal      int64      `json:"subtotal"`
	FinalPrice    int64      `json:"finalPrice"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

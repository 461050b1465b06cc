package dto

// QuoteRequest petición de resumen del checkout con los puntos deseados.
type QuoteRequest struct {
	BonusRequested int64 `json:"bonus_requested"`
}

// QuoteResponse resumen del pedido antes de confirmar. BonusUsed ya viene
// ajustado al rango válido: la entrada fuera de rango se corrige, no se
// rechaza.
type QuoteResponse struct {
	Subtotal          int64  `json:"subtotal"`
	SubtotalDisplay   string `json:"subtotal_display"`
	MaxBonus          int64  `json:"max_bonus"`
	BonusUsed         int64  `json:"bonus_used"`
	FinalPrice        int64  `json:"final_price"`
	FinalPriceDisplay string `json:"final_price_display"`
}

// CheckoutRequest datos del formulario de pedido.
type CheckoutRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PickupPoint   string `json:"pickup_point" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card bonus"`
	Comment       string `json:"comment"`
	BonusUsed     int64  `json:"bonus_used" validate:"min=0"`
	AgreeTerms    bool   `json:"agree_terms" validate:"required"`
}

// OrderResponse salida de un pedido creado o listado.
type OrderResponse struct {
	ID                string             `json:"id"`
	OrderNumber       string             `json:"order_number"`
	UserName          string             `json:"user_name"`
	Phone             string             `json:"phone"`
	Email             string             `json:"email"`
	PickupPoint       string             `json:"pickup_point"`
	PickupPointName   string             `json:"pickup_point_name"`
	PaymentMethod     string             `json:"payment_method"`
	Comment           string             `json:"comment,omitempty"`
	BonusUsed         int64              `json:"bonus_used"`
	Items             []CartLineResponse `json:"items"`
	Subtotal          int64              `json:"subtotal"`
	FinalPrice        int64              `json:"final_price"`
	FinalPriceDisplay string             `json:"final_price_display"`
	Status            string             `json:"status"`
	CreatedAt         string             `json:"created_at"`
}

// OrderListResponse historial de pedidos de la sesión.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

package dto

// AddItemRequest entrada para añadir un producto al carrito.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ChangeQuantityRequest delta de cantidad sobre una línea existente.
// Un delta que deja la cantidad en 0 o menos elimina la línea.
type ChangeQuantityRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// CartLineResponse una línea del carrito.
type CartLineResponse struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Icon         string `json:"icon"`
	Quantity     int64  `json:"quantity"`
}

// CartSummaryResponse carrito completo más los agregados de cabecera.
type CartSummaryResponse struct {
	Items           []CartLineResponse `json:"items"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	TotalItems      int64              `json:"total_items"`
}

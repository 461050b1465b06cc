// Package checkout contiene las reglas puras de liquidación de bonificación.
//
// Regla de canje: 1 punto = 1 rublo, y el cliente nunca paga menos del 10%
// del subtotal en dinero, es decir el canje se limita al 90% del subtotal.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/ecomarket/storefront-api/internal/domain/entity"
)

// MaxRedeemFraction fracción máxima del subtotal canjeable con puntos.
var MaxRedeemFraction = decimal.NewFromFloat(0.9)

// Subtotal es el pliegue puro sobre las líneas: Σ price·quantity.
// Aritmética entera sin redondeo de moneda.
func Subtotal(items []entity.CartLine) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// TotalItems devuelve la suma de cantidades (contador del carrito en cabecera).
func TotalItems(items []entity.CartLine) int64 {
	var total int64
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// MaxRedeemable = floor(min(balance, subtotal·0.9)).
// El floor se calcula con aritmética decimal exacta, no con float64.
func MaxRedeemable(subtotal, bonusBalance int64) int64 {
	limit := decimal.NewFromInt(subtotal).Mul(MaxRedeemFraction).Floor().IntPart()
	if bonusBalance < limit {
		return bonusBalance
	}
	return limit
}

// ClampBonus ajusta el valor pedido al rango [0, max]. La entrada fuera de
// rango se corrige en silencio, nunca se rechaza.
func ClampBonus(requested, max int64) int64 {
	if requested < 0 {
		return 0
	}
	if requested > max {
		return max
	}
	return requested
}

// FinalPrice = max(0, subtotal - bonusUsed).
func FinalPrice(subtotal, bonusUsed int64) int64 {
	final := subtotal - bonusUsed
	if final < 0 {
		return 0
	}
	return final
}

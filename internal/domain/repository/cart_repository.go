package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// CartRepository puerto de persistencia del carrito de una sesión.
// Contrato: lectura de colección completa, mutación en memoria y escritura
// de colección completa; no hay actualizaciones parciales.
type CartRepository interface {
	Load(sessionID string) ([]entity.CartLine, error)
	Save(sessionID string, items []entity.CartLine) error
	Clear(sessionID string) error
}

package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// OrderRepository puerto del historial de pedidos de una sesión.
// Los pedidos son de solo-agregado: una vez creados no se reescriben.
type OrderRepository interface {
	List(sessionID string) ([]entity.Order, error)
	Append(sessionID string, order entity.Order) error
}

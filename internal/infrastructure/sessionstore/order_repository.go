package sessionstore

import (
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre el store de sesión.
type OrderRepo struct {
	mgr *Manager
}

// NewOrderRepository construye el adaptador del historial de pedidos.
func NewOrderRepository(mgr *Manager) *OrderRepo {
	return &OrderRepo{mgr: mgr}
}

// List devuelve el historial completo de pedidos de la sesión.
func (r *OrderRepo) List(sessionID string) ([]entity.Order, error) {
	var orders []entity.Order
	if _, err := r.mgr.Store(sessionID).Get(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Append agrega un pedido al final del historial.
func (r *OrderRepo) Append(sessionID string, order entity.Order) error {
	st := r.mgr.Store(sessionID)
	var orders []entity.Order
	if _, err := st.Get(KeyOrders, &orders); err != nil {
		return err
	}
	orders = append(orders, order)
	return st.Set(KeyOrders, orders)
}

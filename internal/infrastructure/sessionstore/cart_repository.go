package sessionstore

import (
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre el store de sesión.
type CartRepo struct {
	mgr *Manager
}

// NewCartRepository construye el adaptador del carrito.
func NewCartRepository(mgr *Manager) *CartRepo {
	return &CartRepo{mgr: mgr}
}

// Load lee la lista completa del carrito; ausente equivale a carrito vacío.
func (r *CartRepo) Load(sessionID string) ([]entity.CartLine, error) {
	var items []entity.CartLine
	if _, err := r.mgr.Store(sessionID).Get(KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save escribe la lista completa del carrito (last-write-wins).
func (r *CartRepo) Save(sessionID string, items []entity.CartLine) error {
	return r.mgr.Store(sessionID).Set(KeyCart, items)
}

// Clear elimina el carrito entero.
func (r *CartRepo) Clear(sessionID string) error {
	r.mgr.Store(sessionID).Delete(KeyCart)
	return nil
}

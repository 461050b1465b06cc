package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// CatalogRepository puerto de lectura de los datos de referencia estáticos:
// catálogo de productos y puntos de entrega. Nunca se mutan.
type CatalogRepository interface {
	Products() []entity.Product
	// FindProduct devuelve nil si el id no existe.
	FindProduct(id string) *entity.Product
	PickupPoints() []entity.PickupPoint
	// FindPickupPoint devuelve nil si el id no existe.
	FindPickupPoint(id string) *entity.PickupPoint
}

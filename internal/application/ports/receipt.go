package ports

import (
	"context"

	"github.com/ecomarket/storefront-api/internal/domain/entity"
)

// ReceiptGenerator define el puerto de salida para el comprobante PDF del
// pedido. Cualquier adaptador (Maroto, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type ReceiptGenerator interface {
	// GenerateReceipt produce los bytes del PDF del pedido. El punto de
	// entrega puede ser nil si el id guardado ya no existe en la config.
	GenerateReceipt(ctx context.Context, order *entity.Order, point *entity.PickupPoint) ([]byte, error)
}

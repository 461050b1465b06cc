package usecase

import (
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain/checkout"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
	"github.com/ecomarket/storefront-api/pkg/money"
)

// CartUseCase mutaciones del carrito de sesión. Cada operación lee el
// carrito completo, lo muta en memoria y lo escribe completo de vuelta.
type CartUseCase struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
	log     *logger.Logger
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, catalog repository.CatalogRepository, log *logger.Logger) *CartUseCase {
	return &CartUseCase{carts: carts, catalog: catalog, log: log}
}

// AddItem añade un producto del catálogo: línea existente suma 1, línea
// nueva entra con cantidad 1. Un id desconocido es no-op silencioso (el
// resumen devuelto refleja el carrito sin cambios).
func (uc *CartUseCase) AddItem(sessionID, productID string) (*dto.CartSummaryResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	product := uc.catalog.FindProduct(productID)
	if product == nil {
		uc.log.Debug().Str("product_id", productID).Msg("addItem con producto desconocido: no-op")
		return toCartSummary(items), nil
	}
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.NewCartLine(*product))
	}
	if err := uc.carts.Save(sessionID, items); err != nil {
		return nil, err
	}
	return toCartSummary(items), nil
}

// ChangeQuantity aplica un delta a la línea indicada. Si la nueva cantidad
// queda en 0 o menos, la línea se elimina entera. Id ausente es no-op.
func (uc *CartUseCase) ChangeQuantity(sessionID, productID string, delta int64) (*dto.CartSummaryResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		}
		if err := uc.carts.Save(sessionID, items); err != nil {
			return nil, err
		}
		break
	}
	return toCartSummary(items), nil
}

// RemoveItem filtra la línea del producto incondicionalmente.
func (uc *CartUseCase) RemoveItem(sessionID, productID string) (*dto.CartSummaryResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if err := uc.carts.Save(sessionID, kept); err != nil {
		return nil, err
	}
	return toCartSummary(kept), nil
}

// Summary devuelve el carrito con subtotal y contador para la cabecera.
func (uc *CartUseCase) Summary(sessionID string) (*dto.CartSummaryResponse, error) {
	items, err := uc.carts.Load(sessionID)
	if err != nil {
		return nil, err
	}
	return toCartSummary(items), nil
}

func toCartSummary(items []entity.CartLine) *dto.CartSummaryResponse {
	subtotal := checkout.Subtotal(items)
	out := &dto.CartSummaryResponse{
		Items:           make([]dto.CartLineResponse, 0, len(items)),
		Subtotal:        subtotal,
		SubtotalDisplay: money.Format(subtotal),
		TotalItems:      checkout.TotalItems(items),
	}
	for _, it := range items {
		out.Items = append(out.Items, toCartLineResponse(it))
	}
	return out
}

func toCartLineResponse(it entity.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ProductID:    it.ProductID,
		Name:         it.Name,
		Price:        it.Price,
		PriceDisplay: money.Format(it.Price),
		Icon:         it.Icon,
		Quantity:     it.Quantity,
	}
}

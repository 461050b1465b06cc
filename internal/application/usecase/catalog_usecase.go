package usecase

import (
	"github.com/ecomarket/storefront-api/internal/application/dto"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/money"
)

// CatalogUseCase lecturas del catálogo y los puntos de entrega.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List devuelve el catálogo completo.
func (uc *CatalogUseCase) List() *dto.ProductListResponse {
	products := uc.catalog.Products()
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, toProductResponse(p))
	}
	return out
}

// GetByID devuelve nil si el producto no existe.
func (uc *CatalogUseCase) GetByID(id string) *dto.ProductResponse {
	p := uc.catalog.FindProduct(id)
	if p == nil {
		return nil
	}
	r := toProductResponse(*p)
	return &r
}

// PickupPoints devuelve los puntos de entrega para el selector del checkout.
func (uc *CatalogUseCase) PickupPoints() []dto.PickupPointResponse {
	points := uc.catalog.PickupPoints()
	out := make([]dto.PickupPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.PickupPointResponse{
			ID:           p.ID,
			DisplayName:  p.DisplayName,
			Address:      p.Address,
			FullName:     p.FullName(),
			WorkingHours: p.WorkingHours,
			Contact:      p.Contact,
		})
	}
	return out
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PriceDisplay: money.Format(p.Price),
		Icon:         p.Icon,
		Category:     p.Category,
	}
}

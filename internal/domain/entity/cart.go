package entity

// CartLine es un snapshot de Product más la cantidad elegida.
// Invariante: como máximo una línea por ProductID en un carrito, y toda
// línea persistida tiene Quantity >= 1 (al llegar a 0 la línea se elimina).
type CartLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Icon      string `json:"icon"`
	Quantity  int64  `json:"quantity"`
}

// NewCartLine crea la línea inicial (cantidad 1) a partir del producto.
func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Icon:      p.Icon,
		Quantity:  1,
	}
}

package entity

// Product representa un artículo del catálogo eco. El catálogo es dato de
// referencia estático: se carga una vez y nunca se muta.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"` // rublos enteros, >= 0
	Icon        string `json:"icon"`  // emoji usado como imagen en la tienda demo
	Category    string `json:"category,omitempty"`
}

package dto

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Icon         string `json:"icon"`
	Category     string `json:"category,omitempty"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// PickupPointResponse salida de un punto de entrega.
type PickupPointResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Address      string `json:"address"`
	FullName     string `json:"full_name"`
	WorkingHours string `json:"working_hours"`
	Contact      string `json:"contact"`
}

package dto

// CreateDepositRequest registro de una entrega de plástico (operador).
type CreateDepositRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	PlasticType string  `json:"plastic_type" validate:"required"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
}

// DepositResponse salida de una operación registrada.
type DepositResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	PlasticType string  `json:"plastic_type"`
	Weight      float64 `json:"weight"`
	BonusAmount int64   `json:"bonus_amount"`
	Date        string  `json:"date"`
	// Message confirma la acreditación, ej. "Начислено 25 баллов ...".
	Message string `json:"message,omitempty"`
}

// DepositListResponse listado de operaciones.
type DepositListResponse struct {
	Items []DepositResponse `json:"items"`
}

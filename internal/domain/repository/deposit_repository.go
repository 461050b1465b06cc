package repository

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// DepositRepository puerto de las operaciones de entrega de plástico.
type DepositRepository interface {
	List(sessionID string) ([]entity.Deposit, error)
	Append(sessionID string, deposit entity.Deposit) error
}

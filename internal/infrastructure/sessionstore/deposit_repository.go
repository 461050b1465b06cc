package sessionstore

import (
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

var _ repository.DepositRepository = (*DepositRepo)(nil)

// DepositRepo implementación del puerto DepositRepository sobre el store.
// Igual que UserRepo, siembra la colección desde los datos de referencia en
// el primer acceso de cada sesión.
type DepositRepo struct {
	mgr   *Manager
	seeds repository.SeedSource
	log   *logger.Logger
}

// NewDepositRepository construye el adaptador de depósitos.
func NewDepositRepository(mgr *Manager, seeds repository.SeedSource, log *logger.Logger) *DepositRepo {
	return &DepositRepo{mgr: mgr, seeds: seeds, log: log}
}

// List devuelve las operaciones de la sesión, sembrándolas si no existen.
func (r *DepositRepo) List(sessionID string) ([]entity.Deposit, error) {
	st := r.mgr.Store(sessionID)
	var deposits []entity.Deposit
	ok, err := st.Get(KeyDeposits, &deposits)
	if err != nil {
		r.log.Warn().Err(err).Msg("leer deposits: se degrada a lista vacía")
		return []entity.Deposit{}, nil
	}
	if ok {
		return deposits, nil
	}
	deposits = r.seeds.SeedDeposits()
	if err := st.Set(KeyDeposits, deposits); err != nil {
		r.log.Warn().Err(err).Msg("cachear depósitos semilla")
	}
	return deposits, nil
}

// Append agrega una operación al final de la colección.
func (r *DepositRepo) Append(sessionID string, deposit entity.Deposit) error {
	deposits, err := r.List(sessionID)
	if err != nil {
		return err
	}
	deposits = append(deposits, deposit)
	return r.mgr.Store(sessionID).Set(KeyDeposits, deposits)
}

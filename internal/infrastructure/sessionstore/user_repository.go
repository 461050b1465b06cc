package sessionstore

import (
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store de sesión.
// En el primer List de cada sesión cachea la lista semilla bajo demoUsers;
// las lecturas posteriores prefieren la copia cacheada.
type UserRepo struct {
	mgr   *Manager
	seeds repository.SeedSource
	log   *logger.Logger
}

// NewUserRepository construye el adaptador del directorio de usuarios.
func NewUserRepository(mgr *Manager, seeds repository.SeedSource, log *logger.Logger) *UserRepo {
	return &UserRepo{mgr: mgr, seeds: seeds, log: log}
}

// List devuelve la lista de usuarios de la sesión, sembrándola si no existe.
// Fallo suave: ante un error de lectura se registra y se devuelve lista vacía.
func (r *UserRepo) List(sessionID string) ([]entity.User, error) {
	st := r.mgr.Store(sessionID)
	var users []entity.User
	ok, err := st.Get(KeyDemoUsers, &users)
	if err != nil {
		r.log.Warn().Err(err).Msg("leer demoUsers: se degrada a lista vacía")
		return []entity.User{}, nil
	}
	if ok {
		return users, nil
	}
	users = r.seeds.SeedUsers()
	if err := st.Set(KeyDemoUsers, users); err != nil {
		r.log.Warn().Err(err).Msg("cachear usuarios semilla")
	}
	return users, nil
}

// SaveAll escribe la lista completa de usuarios.
func (r *UserRepo) SaveAll(sessionID string, users []entity.User) error {
	return r.mgr.Store(sessionID).Set(KeyDemoUsers, users)
}

// Current devuelve la proyección currentUser o nil si la sesión es anónima.
func (r *UserRepo) Current(sessionID string) (*entity.SessionUser, error) {
	var u entity.SessionUser
	ok, err := r.mgr.Store(sessionID).Get(KeyCurrentUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// SetCurrent guarda la proyección del usuario autenticado.
func (r *UserRepo) SetCurrent(sessionID string, u entity.SessionUser) error {
	return r.mgr.Store(sessionID).Set(KeyCurrentUser, u)
}

// ClearCurrent borra la sesión de usuario. El carrito no se toca: sobrevive
// al logout por diseño.
func (r *UserRepo) ClearCurrent(sessionID string) error {
	r.mgr.Store(sessionID).Delete(KeyCurrentUser)
	return nil
}

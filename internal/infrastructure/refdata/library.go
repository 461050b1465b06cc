// Package refdata carga los datos de referencia estáticos de la tienda:
// catálogo de productos, puntos de entrega, usuarios semilla y depósitos
// iniciales. Todo se lee una sola vez al arrancar; las colecciones mutables
// (usuarios, depósitos) se cachean después dentro del store de cada sesión.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/internal/domain/repository"
	"github.com/ecomarket/storefront-api/pkg/logger"
)

var (
	_ repository.CatalogRepository = (*Library)(nil)
	_ repository.SeedSource        = (*Library)(nil)
)

// Library mantiene en memoria los datos de referencia ya cargados.
type Library struct {
	products     []entity.Product
	productIdx   map[string]int
	pickupPoints []entity.PickupPoint
	pickupIdx    map[string]int
	seedUsers    []entity.User
	seedDeposits []entity.Deposit
}

// Load lee los datos de referencia del directorio indicado. Cada recurso
// falla suave: si el archivo no existe o no parsea, el catálogo y los puntos
// caen a los valores por defecto del paquete y las semillas a lista vacía.
func Load(dir string, log *logger.Logger) *Library {
	lib := &Library{
		products:     defaultProducts,
		pickupPoints: defaultPickupPoints,
		seedUsers:    []entity.User{},
		seedDeposits: []entity.Deposit{},
	}

	if err := readJSON(dir, "products.json", &lib.products); err != nil {
		log.Warn().Err(err).Msg("products.json no disponible: se usa el catálogo por defecto")
		lib.products = defaultProducts
	}
	if err := readJSON(dir, "pickup_points.json", &lib.pickupPoints); err != nil {
		log.Warn().Err(err).Msg("pickup_points.json no disponible: se usan los puntos por defecto")
		lib.pickupPoints = defaultPickupPoints
	}
	if err := readJSON(dir, "users.json", &lib.seedUsers); err != nil {
		log.Warn().Err(err).Msg("users.json no disponible: directorio de usuarios vacío")
		lib.seedUsers = []entity.User{}
	}
	if err := readJSON(dir, "deposits.json", &lib.seedDeposits); err != nil {
		log.Warn().Err(err).Msg("deposits.json no disponible: sin depósitos iniciales")
		lib.seedDeposits = []entity.Deposit{}
	}

	lib.productIdx = make(map[string]int, len(lib.products))
	for i, p := range lib.products {
		lib.productIdx[p.ID] = i
	}
	lib.pickupIdx = make(map[string]int, len(lib.pickupPoints))
	for i, p := range lib.pickupPoints {
		lib.pickupIdx[p.ID] = i
	}

	log.Info().
		Int("products", len(lib.products)).
		Int("pickup_points", len(lib.pickupPoints)).
		Int("seed_users", len(lib.seedUsers)).
		Int("seed_deposits", len(lib.seedDeposits)).
		Msg("datos de referencia cargados")
	return lib
}

// NewLibrary construye una Library directamente desde memoria (tests).
func NewLibrary(products []entity.Product, points []entity.PickupPoint, users []entity.User, deposits []entity.Deposit) *Library {
	lib := &Library{
		products:     products,
		pickupPoints: points,
		seedUsers:    users,
		seedDeposits: deposits,
		productIdx:   make(map[string]int, len(products)),
		pickupIdx:    make(map[string]int, len(points)),
	}
	for i, p := range products {
		lib.productIdx[p.ID] = i
	}
	for i, p := range points {
		lib.pickupIdx[p.ID] = i
	}
	return lib
}

// Products devuelve el catálogo completo.
func (l *Library) Products() []entity.Product {
	return l.products
}

// FindProduct devuelve nil si el id no existe en el catálogo.
func (l *Library) FindProduct(id string) *entity.Product {
	i, ok := l.productIdx[id]
	if !ok {
		return nil
	}
	p := l.products[i]
	return &p
}

// PickupPoints devuelve los puntos de entrega configurados.
func (l *Library) PickupPoints() []entity.PickupPoint {
	return l.pickupPoints
}

// FindPickupPoint devuelve nil si el id no existe.
func (l *Library) FindPickupPoint(id string) *entity.PickupPoint {
	i, ok := l.pickupIdx[id]
	if !ok {
		return nil
	}
	p := l.pickupPoints[i]
	return &p
}

// SeedUsers devuelve una copia de la lista semilla de usuarios: cada sesión
// cachea y muta la suya sin tocar la referencia.
func (l *Library) SeedUsers() []entity.User {
	out := make([]entity.User, len(l.seedUsers))
	copy(out, l.seedUsers)
	return out
}

// SeedDeposits devuelve una copia de los depósitos iniciales.
func (l *Library) SeedDeposits() []entity.Deposit {
	out := make([]entity.Deposit, len(l.seedDeposits))
	copy(out, l.seedDeposits)
	return out
}

func readJSON(dir, name string, into any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("refdata: parsear %s: %w", name, err)
	}
	return nil
}

// Package sessionstore implementa el almacenamiento clave→JSON por sesión de
// pestaña y los adaptadores de repositorio que operan sobre él.
//
// Equivale al sessionStorage del navegador: cada sesión posee su propio
// mapa de claves con valores serializados en JSON, y todo el estado muere
// cuando la sesión expira. Las claves son las del demo original:
// currentUser, cart, demoUsers, deposits, orders, userProfileData, userPhone.
package sessionstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Claves del store, idénticas a las del storefront original.
const (
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyDemoUsers   = "demoUsers"
	KeyDeposits    = "deposits"
	KeyOrders      = "orders"
	KeyProfileData = "userProfileData"
	KeyUserPhone   = "userPhone"
)

// Store es el almacén clave→valor de una sesión. Los valores se guardan ya
// serializados, de modo que el contrato "leer colección completa, mutar en
// memoria, escribir colección completa" es literal.
//
// El mutex serializa peticiones concurrentes de una misma pestaña (el
// navegador puede encadenar fetches); entre sesiones no hay estado común.
type Store struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{values: make(map[string]json.RawMessage)}
}

// Get deserializa el valor de key en into. Devuelve ok=false si la clave no
// existe (into queda intacto).
func (s *Store) Get(key string, into any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, fmt.Errorf("sessionstore: deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set serializa v y lo guarda bajo key (last-write-wins).
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sessionstore: serializar %q: %w", key, err)
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete elimina la clave; borrar una clave ausente no es error.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

// Len devuelve el número de claves presentes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

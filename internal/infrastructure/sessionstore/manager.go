package sessionstore

import (
	"sync"
	"time"
)

// Manager posee los stores de todas las sesiones vivas, indexados por el id
// de sesión del token. Una sesión inactiva más de ttl se descarta completa,
// que es el equivalente servidor de cerrar la pestaña.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time // inyectable en tests
}

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewManager crea el manager con el TTL indicado y arranca el janitor que
// barre sesiones vencidas.
func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go m.janitor()
	return m
}

// Store devuelve el store de la sesión, creándolo si no existe o si expiró.
// Una sesión expirada renace vacía: mismo comportamiento que reabrir la
// pestaña con el mismo token aún válido.
func (m *Manager) Store(sessionID string) *Store {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[sessionID]
	if ok && now.Sub(e.lastSeen) <= m.ttl {
		e.lastSeen = now
		return e.store
	}
	e = &sessionEntry{store: NewStore(), lastSeen: now}
	m.sessions[sessionID] = e
	return e.store
}

// Destroy elimina la sesión y todo su estado.
func (m *Manager) Destroy(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

// Active devuelve el número de sesiones vivas (para logs y health).
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close detiene el janitor.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) janitor() {
	interval := m.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-t.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	now := m.now()
	m.mu.Lock()
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()
}

package session

import (
	"context"
	"sync"
	"time"
)

// Store persiste el token de cada sesión bajo su id.
// Load devuelve "" sin error cuando la sesión no existe o expiró.
type Store interface {
	Load(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, id, token string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// sweepInterval separación mínima entre barridos de sesiones expiradas.
const sweepInterval = time.Minute

// MemoryStore Store en memoria del proceso; se pierde al reiniciar.
// Las sesiones expiradas se purgan al leerlas y en un barrido periódico durante Save.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return "", nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return "", nil
	}
	return e.token, nil
}

func (s *MemoryStore) Save(_ context.Context, id, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	e := memoryEntry{token: token}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.entries[id] = e
	return nil
}

// sweep borra las entradas expiradas. Requiere s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Len número de sesiones guardadas (incluye expiradas aún no purgadas).
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

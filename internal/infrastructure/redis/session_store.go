package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-web/internal/session"
	"github.com/jhoicas/Inventario-web/pkg/config"
)

const sessionKeyPrefix = "session:"

// SessionStore guarda el token de cada sesión en Redis con TTL.
// A diferencia de un cache, los errores de Redis se propagan: sin store no hay sesión.
type SessionStore struct {
	client goredis.UniversalClient
}

var _ session.Store = (*SessionStore)(nil)

// NewClient crea el cliente Redis desde la configuración.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewSessionStore crea el store sobre un cliente ya configurado.
func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{client: client}
}

// Ping verifica la conexión al arrancar.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context, id string) (string, error) {
	tok, err := s.client.Get(ctx, key(id)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: leer sesión: %w", err)
	}
	return tok, nil
}

func (s *SessionStore) Save(ctx context.Context, id, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(id), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("redis: borrar sesión: %w", err)
	}
	return nil
}

// Close libera la conexión.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

func key(id string) string {
	return sessionKeyPrefix + id
}

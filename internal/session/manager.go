package session

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/jhoicas/Inventario-web/pkg/logger"
	"github.com/rs/zerolog"
)

// ErrUndecodableToken el token guardado no se pudo decodificar y la sesión se cerró (modo estricto).
var ErrUndecodableToken = errors.New("session: token no decodificable")

// Options configuración del Manager.
type Options struct {
	TTL time.Duration
	// Strict cierra la sesión cuando el token guardado no se puede decodificar.
	Strict bool
}

// Manager abre sesiones a partir del id de la cookie.
type Manager struct {
	store Store
	opts  Options
	log   zerolog.Logger
}

// NewManager crea el manager sobre un Store.
func NewManager(store Store, opts Options, log zerolog.Logger) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &Manager{store: store, opts: opts, log: log}
}

// TTL vida configurada de las sesiones.
func (m *Manager) TTL() time.Duration { return m.opts.TTL }

// Anonymous sesión sin token ni id.
func (m *Manager) Anonymous() *Session {
	return &Session{store: m.store, ttl: m.opts.TTL, log: m.log}
}

// Open carga la sesión con el id dado. Siempre devuelve una sesión utilizable;
// ante un error del store la sesión queda anónima y se devuelve el error.
func (m *Manager) Open(ctx context.Context, id string) (*Session, error) {
	s := m.Anonymous()
	if id == "" {
		return s, nil
	}
	token, err := m.store.Load(ctx, id)
	if err != nil {
		return s, err
	}
	if token == "" {
		// cookie huérfana: la sesión expiró o se cerró en otro lado
		s.changed = true
		return s, nil
	}
	s.id = id
	s.token = token
	if m.opts.Strict {
		if _, err := jwt.RoleFromToken(token); err != nil {
			m.log.Warn().Err(err).Str(logger.FieldSession, logger.ShortID(id)).Msg("token no decodificable, se cierra la sesión")
			if lerr := s.Logout(ctx); lerr != nil {
				return s, lerr
			}
			return s, ErrUndecodableToken
		}
	}
	return s, nil
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/jhoicas/Inventario-web/pkg/logger"
	"github.com/rs/zerolog"
)

// Session estado de autenticación de un navegador. El token nunca sale del servidor;
// el navegador sólo conoce el id.
type Session struct {
	id      string
	token   string
	store   Store
	ttl     time.Duration
	log     zerolog.Logger
	changed bool
}

// ID id de la sesión; vacío mientras no se haya guardado un token.
func (s *Session) ID() string { return s.id }

// Changed indica si el id cambió durante la petición y hay que reescribir la cookie.
func (s *Session) Changed() bool { return s.changed }

// SetToken guarda el token y rota el id de sesión.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("session: token vacío")
	}
	newID := uuid.NewString()
	if err := s.store.Save(ctx, newID, token, s.ttl); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	if s.id != "" {
		if err := s.store.Delete(ctx, s.id); err != nil {
			s.log.Warn().Err(err).Str(logger.FieldSession, logger.ShortID(s.id)).Msg("no se pudo borrar la sesión anterior")
		}
	}
	s.id = newID
	s.token = token
	s.changed = true
	return nil
}

// Token devuelve el token guardado, si existe.
func (s *Session) Token() (string, bool) {
	return s.token, s.token != ""
}

// IsLoggedIn true si hay token, sin validar su contenido ni su vigencia.
func (s *Session) IsLoggedIn() bool {
	return s.token != ""
}

// UserRole rol leído del claim role del token. Nunca falla: sin token o con un
// token que no se puede decodificar devuelve "".
func (s *Session) UserRole() string {
	if s.token == "" {
		return ""
	}
	role, err := jwt.RoleFromToken(s.token)
	if err != nil {
		s.log.Warn().Err(err).Str(logger.FieldSession, logger.ShortID(s.id)).Msg("no se pudo leer el rol del token")
		return ""
	}
	return role
}

// Logout borra el token. Es idempotente.
func (s *Session) Logout(ctx context.Context) error {
	s.token = ""
	if s.id == "" {
		return nil
	}
	id := s.id
	s.id = ""
	s.changed = true
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("session: borrar: %w", err)
	}
	return nil
}

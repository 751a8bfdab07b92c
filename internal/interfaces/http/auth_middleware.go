package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/session"
)

// LocalSession key de la sesión del navegador en c.Locals.
const LocalSession = "session"

// CookieConfig cookie que transporta el id de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// SessionMiddleware abre la sesión a partir de la cookie, la deja en c.Locals y en el
// UserContext (de ahí la toma el transporte del API) y reescribe la cookie si cambió.
func SessionMiddleware(m *session.Manager, cookie CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		sess, err := m.Open(ctx, c.Cookies(cookie.Name))
		switch {
		case errors.Is(err, session.ErrUndecodableToken):
			// sesión cerrada por el manager; seguimos como anónimo
		case err != nil:
			zerolog.Ctx(ctx).Error().Err(err).Msg("abrir sesión")
		}
		c.Locals(LocalSession, sess)
		c.SetUserContext(session.WithContext(ctx, sess))

		nextErr := c.Next()

		if sess.Changed() {
			writeSessionCookie(c, cookie, sess.ID())
		}
		return nextErr
	}
}

func writeSessionCookie(c *fiber.Ctx, cfg CookieConfig, id string) {
	ck := &fiber.Cookie{
		Name:     cfg.Name,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if id == "" {
		ck.Expires = time.Unix(0, 0)
		ck.MaxAge = -1
	} else {
		ck.Expires = time.Now().Add(cfg.TTL)
		ck.MaxAge = int(cfg.TTL.Seconds())
	}
	c.Cookie(ck)
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware) o nil.
func GetSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(LocalSession).(*session.Session)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

// Check predicado sobre la sesión; si falla indica a dónde redirigir.
type Check func(s *session.Session) (redirect string, ok bool)

// Authenticated exige un token en la sesión; si no, /login.
func Authenticated() Check {
	return func(s *session.Session) (string, bool) {
		if s != nil && s.IsLoggedIn() {
			return "", true
		}
		return auth.PathLogin, false
	}
}

// HasRole exige que el rol del token sea role; si no, /forbidden.
func HasRole(role string) Check {
	return func(s *session.Session) (string, bool) {
		if s != nil && s.UserRole() == role {
			return "", true
		}
		return auth.PathForbidden, false
	}
}

// Guard evalúa los checks en orden y corta en el primero que falle.
// No consulta el API: sólo mira la sesión.
func Guard(checks ...Check) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		for _, check := range checks {
			if redirect, ok := check(sess); !ok {
				return c.Redirect(redirect, fiber.StatusFound)
			}
		}
		return c.Next()
	}
}

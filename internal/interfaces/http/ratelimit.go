package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
)

// MsgTooManyRequests se muestra en el formulario cuando se supera el límite.
const MsgTooManyRequests = "Demasiados intentos. Espere un momento e intente de nuevo."

// RateLimit limita por IP los envíos de formularios públicos (login y registro).
// Si el store del limiter falla se deja pasar la petición.
func RateLimit(l *limiter.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		ip := c.IP()

		lc, err := l.Get(ctx, ip)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("ip", ip).Msg("rate limit no disponible")
			return c.Next()
		}
		if lc.Reached {
			zerolog.Ctx(ctx).Warn().Str("ip", ip).Int64("limit", lc.Limit).Msg("rate limit superado")
			return c.Status(fiber.StatusTooManyRequests).SendString(MsgTooManyRequests)
		}
		return c.Next()
	}
}

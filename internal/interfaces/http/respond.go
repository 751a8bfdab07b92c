package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
)

// MsgInvalidForm cuando el formulario no se puede leer.
const MsgInvalidForm = "Formulario inválido."

func redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusFound)
}

// unauthorized un 401 del API lleva a /forbidden; nunca se reintenta.
func unauthorized(c *fiber.Ctx, err error) (bool, error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		return true, redirect(c, auth.PathForbidden)
	}
	return false, nil
}

// statusFor código HTTP de una vista que se muestra con mensaje de error.
func statusFor(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingCompany):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadGateway
	}
}

// fieldErrors mensajes por campo si err es de validación.
func fieldErrors(err error) []string {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

// paramID id numérico de la ruta; ausente = 0.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

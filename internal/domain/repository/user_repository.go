package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// AuthRepository puerto de registro e inicio de sesión. Ninguna de las dos llamadas lleva token.
type AuthRepository interface {
	Register(ctx context.Context, reg entity.Registration) error
	// Login devuelve el token emitido por el API.
	Login(ctx context.Context, cred entity.Credentials) (string, error)
}

package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Rutas de aterrizaje según el rol del token.
const (
	PathAdminDashboard = "/admin/dashboard"
	PathUserDashboard  = "/user/dashboard"
	PathLanding        = "/"
	PathLogin          = "/login"
	PathForbidden      = "/forbidden"
)

// Mensajes visibles para el usuario.
const (
	MsgLoginFailed    = "Usuario o contraseña inválidos"
	MsgRegisterFailed = "No se pudo completar el registro. Intente de nuevo."
	MsgRegistered     = "Registro exitoso. Ya puede iniciar sesión."
)

// TokenHolder lo que el caso de uso necesita de la sesión del navegador.
type TokenHolder interface {
	SetToken(ctx context.Context, token string) error
	UserRole() string
	Logout(ctx context.Context) error
}

// AuthUseCase registro, login y logout contra el API.
type AuthUseCase struct {
	repo repository.AuthRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.AuthRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

// Register valida el formulario y registra usuario y empresa. Tras el éxito el usuario va a /login.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if err := uc.repo.Register(ctx, in.ToEntity()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("username", in.Username).Msg("registro fallido")
		return fmt.Errorf("registro: %w", err)
	}
	return nil
}

// Login obtiene el token, lo guarda en la sesión y devuelve la ruta de aterrizaje del rol.
func (uc *AuthUseCase) Login(ctx context.Context, sess TokenHolder, in dto.LoginRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	token, err := uc.repo.Login(ctx, in.ToEntity())
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("username", in.Username).Msg("login fallido")
		return "", fmt.Errorf("login: %w", err)
	}
	if err := sess.SetToken(ctx, token); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return LandingPath(sess.UserRole()), nil
}

// Logout borra el token y devuelve la vista pública.
func (uc *AuthUseCase) Logout(ctx context.Context, sess TokenHolder) (string, error) {
	if err := sess.Logout(ctx); err != nil {
		return PathLanding, fmt.Errorf("logout: %w", err)
	}
	return PathLanding, nil
}

// LandingPath ADMIN -> panel admin, USER -> panel usuario, cualquier otro -> inicio.
func LandingPath(role string) string {
	switch role {
	case entity.RoleAdmin:
		return PathAdminDashboard
	case entity.RoleUser:
		return PathUserDashboard
	default:
		return PathLanding
	}
}

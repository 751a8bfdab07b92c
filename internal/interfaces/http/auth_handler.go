package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
)

// AuthHandler páginas públicas: inicio, registro, login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Landing GET /
func (h *AuthHandler) Landing(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, PageLanding, Page{Title: "Inventario"})
}

// RegisterForm GET /register
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, PageRegister, Page{Title: "Registro", Data: dto.RegisterRequest{}})
}

// Register POST /register. El éxito lleva a /login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return render(c, fiber.StatusBadRequest, PageRegister, Page{Title: "Registro", Message: MsgInvalidForm, Data: in})
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		in.Password = ""
		p := Page{Title: "Registro", Data: in, Errors: fieldErrors(err)}
		if p.Errors == nil {
			p.Message = auth.MsgRegisterFailed
		}
		return render(c, statusFor(err), PageRegister, p)
	}
	return redirect(c, auth.PathLogin+"?registered=1")
}

// LoginForm GET /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	p := Page{Title: "Iniciar sesión", Data: dto.LoginRequest{}}
	if c.Query("registered") != "" {
		p.Notice = auth.MsgRegistered
	}
	return render(c, fiber.StatusOK, PageLogin, p)
}

// Login POST /login. Guarda el token en la sesión y redirige según el rol.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return render(c, fiber.StatusBadRequest, PageLogin, Page{Title: "Iniciar sesión", Message: MsgInvalidForm})
	}
	sess := GetSession(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "sesión no inicializada")
	}
	next, err := h.uc.Login(c.UserContext(), sess, in)
	if err != nil {
		p := Page{Title: "Iniciar sesión", Data: dto.LoginRequest{Username: in.Username}, Errors: fieldErrors(err)}
		status := fiber.StatusBadRequest
		if p.Errors == nil {
			p.Message = auth.MsgLoginFailed
			status = fiber.StatusUnauthorized
			if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrForbidden) && !errors.Is(err, domain.ErrInvalidInput) {
				status = statusFor(err)
			}
		}
		return render(c, status, PageLogin, p)
	}
	return redirect(c, next)
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return redirect(c, auth.PathLanding)
	}
	next, err := h.uc.Logout(c.UserContext(), sess)
	if err != nil {
		// el token ya no está en la sesión aunque el store haya fallado
		zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("logout")
	}
	return redirect(c, next)
}

// Forbidden GET /forbidden
func (h *AuthHandler) Forbidden(c *fiber.Ctx) error {
	return render(c, fiber.StatusForbidden, PageForbidden, Page{Title: "Acceso denegado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
)

// DashboardHandler paneles de inicio por rol.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin GET /admin/dashboard (ADMIN).
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	d, err := h.uc.Admin(c.UserContext())
	if done, rerr := unauthorized(c, err); done {
		return rerr
	}
	return render(c, statusFor(err), PageAdminDashboard, Page{Title: "Panel de administración", Message: d.Message, Data: d})
}

// User GET /user/dashboard (USER). Empresa del usuario, luego sus datos.
func (h *DashboardHandler) User(c *fiber.Ctx) error {
	d, err := h.uc.User(c.UserContext())
	if done, rerr := unauthorized(c, err); done {
		return rerr
	}
	return render(c, statusFor(err), PageUserDashboard, Page{Title: "Mi empresa", Message: d.Message, Data: d})
}

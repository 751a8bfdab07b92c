package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
)

// CompanyHandler vista de empresas (ADMIN).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) page(c *fiber.Ctx, err error, l *usecase.CompanyList, errs []string) error {
	if done, rerr := unauthorized(c, err); done {
		return rerr
	}
	return render(c, statusFor(err), PageCompanyList, Page{
		Title:   "Empresas",
		Message: l.Message,
		Notice:  l.Notice,
		Errors:  errs,
		Data:    l,
	})
}

// List GET /company-list
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	l, err := h.uc.Load(c.UserContext())
	return h.page(c, err, l, nil)
}

// Update POST /company-list/:id/update
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.uc.Load(ctx)
	if err != nil {
		return h.page(c, err, l, nil)
	}
	if err := dto.Validate(in); err != nil {
		return h.page(c, err, l, fieldErrors(err))
	}
	err = h.uc.Update(ctx, l, id, in.ToPatch())
	return h.page(c, err, l, nil)
}

// Delete POST /company-list/:id/delete. Si la empresa tiene empleados o inventario
// sigue en la lista y se muestra el motivo.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.uc.Load(ctx)
	if err != nil {
		return h.page(c, err, l, nil)
	}
	err = h.uc.Delete(ctx, l, id)
	return h.page(c, err, l, nil)
}

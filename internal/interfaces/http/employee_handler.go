package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
)

// EmployeeHandler vista de empleados de una empresa.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) page(c *fiber.Ctx, err error, l *usecase.EmployeeList, errs []string) error {
	if done, rerr := unauthorized(c, err); done {
		return rerr
	}
	return render(c, statusFor(err), PageEmployeeList, Page{
		Title:   "Empleados",
		Message: l.Message,
		Notice:  l.Notice,
		Errors:  errs,
		Data:    l,
	})
}

// load empresa + empleados; sin :companyId se usa la empresa del usuario.
func (h *EmployeeHandler) load(c *fiber.Ctx) (*usecase.EmployeeList, error) {
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return nil, err
	}
	return h.uc.Load(c.UserContext(), companyID)
}

// List GET /employee-list/:companyId
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	l, err := h.load(c)
	if l == nil {
		return fiber.ErrBadRequest
	}
	return h.page(c, err, l, nil)
}

// Add POST /employee-list/:companyId/employees
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c)
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	if err := dto.Validate(in); err != nil {
		return h.page(c, err, l, fieldErrors(err))
	}
	e, err := in.ToEntity()
	if err != nil {
		return h.page(c, err, l, []string{err.Error()})
	}
	err = h.uc.Add(c.UserContext(), l, e)
	return h.page(c, err, l, nil)
}

// Update POST /employee-list/:companyId/employees/:id/update
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c)
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	if err := dto.Validate(in); err != nil {
		return h.page(c, err, l, fieldErrors(err))
	}
	patch, err := in.ToPatch()
	if err != nil {
		return h.page(c, err, l, []string{err.Error()})
	}
	err = h.uc.Update(c.UserContext(), l, id, patch)
	return h.page(c, err, l, nil)
}

// Delete POST /employee-list/:companyId/employees/:id/delete
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c)
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	err = h.uc.Delete(c.UserContext(), l, id)
	return h.page(c, err, l, nil)
}

package http

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
)

// Content-Type de las descargas.
const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// InventoryHandler vista de inventario de una empresa y sus descargas.
type InventoryHandler struct {
	uc      *inventory.UseCase
	reports *inventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, reports *inventory.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, reports: reports}
}

func (h *InventoryHandler) page(c *fiber.Ctx, err error, l *inventory.List, errs []string) error {
	if done, rerr := unauthorized(c, err); done {
		return rerr
	}
	return render(c, statusFor(err), PageInventoryList, Page{
		Title:   "Inventario",
		Message: l.Message,
		Notice:  l.Notice,
		Errors:  errs,
		Data:    l,
	})
}

// filters lee ?out_of_stock=on&reorder=on&q=...
func filters(c *fiber.Ctx) inventory.Filters {
	q := dto.ParseInventoryFilter(c.Query("out_of_stock"), c.Query("reorder"), c.Query("q"))
	return inventory.Filters{OutOfStock: q.OutOfStock, Reorder: q.Reorder, Search: q.Search}
}

func (h *InventoryHandler) load(c *fiber.Ctx, f inventory.Filters) (*inventory.List, error) {
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return nil, err
	}
	return h.uc.Load(c.UserContext(), companyID, f)
}

// List GET /inventory-list/:companyId
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	l, err := h.load(c, filters(c))
	if l == nil {
		return fiber.ErrBadRequest
	}
	return h.page(c, err, l, nil)
}

// Add POST /inventory-list/:companyId/items
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c, inventory.Filters{})
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	if err := dto.Validate(in); err != nil {
		return h.page(c, err, l, fieldErrors(err))
	}
	item, err := in.ToEntity()
	if err != nil {
		return h.page(c, err, l, []string{err.Error()})
	}
	err = h.uc.Add(c.UserContext(), l, item)
	return h.page(c, err, l, nil)
}

// Update POST /inventory-list/:companyId/items/:id/update
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c, inventory.Filters{})
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

// Delete POST /inventory-list/:companyId/items/:id/delete
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	l, err := h.load(c, inventory.Filters{})
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	err = h.uc.Delete(c.UserContext(), l, id)
	return h.page(c, err, l, nil)
}

// Refresh POST /inventory-list/:companyId/refresh. Cierre de periodo de todos los ítems.
func (h *InventoryHandler) Refresh(c *fiber.Ctx) error {
	l, err := h.load(c, inventory.Filters{})
	if l == nil {
		return fiber.ErrBadRequest
	}
	if err != nil {
		return h.page(c, err, l, nil)
	}
	err = h.uc.Rollover(c.UserContext(), l)
	return h.page(c, err, l, nil)
}

// ReportPDF GET /inventory-list/:companyId/report.pdf
func (h *InventoryHandler) ReportPDF(c *fiber.Ctx) error {
	return h.download(c, mimePDF, h.reports.StockPDF)
}

// ExportXLSX GET /inventory-list/:companyId/export.xlsx
func (h *InventoryHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.download(c, mimeXLSX, h.reports.StockXLSX)
}

type reportFunc func(ctx context.Context, companyID int64) ([]byte, string, error)

func (h *InventoryHandler) download(c *fiber.Ctx, mime string, gen reportFunc) error {
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyId inválido"})
	}
	data, name, err := gen(c.UserContext(), companyID)
	if err != nil {
		if done, rerr := unauthorized(c, err); done {
			return rerr
		}
		zerolog.Ctx(c.UserContext()).Error().Err(err).Int64("company_id", companyID).Msg("generar reporte")
		return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: "no se pudo generar el reporte"})
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+url.PathEscape(name)+`"`)
	return c.Send(data)
}

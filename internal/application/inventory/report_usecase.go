package inventory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// ReportUseCase descarga del inventario de una empresa en PDF o XLSX.
type ReportUseCase struct {
	companies   repository.CompanyRepository
	inventories repository.InventoryRepository
	pdf         StockPDFGenerator
	xlsx        StockSpreadsheetExporter
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(
	companies repository.CompanyRepository,
	inventories repository.InventoryRepository,
	pdf StockPDFGenerator,
	xlsx StockSpreadsheetExporter,
) *ReportUseCase {
	return &ReportUseCase{companies: companies, inventories: inventories, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// StockPDF devuelve (pdfBytes, filename, err).
func (uc *ReportUseCase) StockPDF(ctx context.Context, companyID int64) ([]byte, string, error) {
	report, err := uc.collect(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateStockReport(ctx, *report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return data, uc.filename(report.Company, "pdf"), nil
}

// StockXLSX devuelve (xlsxBytes, filename, err).
func (uc *ReportUseCase) StockXLSX(ctx context.Context, companyID int64) ([]byte, string, error) {
	report, err := uc.collect(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.xlsx.ExportInventory(ctx, *report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar XLSX: %w", err)
	}
	return data, uc.filename(report.Company, "xlsx"), nil
}

func (uc *ReportUseCase) collect(ctx context.Context, companyID int64) (*StockReport, error) {
	id, err := usecase.ResolveCompanyID(ctx, uc.companies, companyID)
	if err != nil {
		return nil, err
	}
	var (
		company *entity.Company
		items   []entity.Inventory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = uc.companies.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = uc.inventories.ListByCompany(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporte: cargar datos: %w", err)
	}
	return &StockReport{Company: *company, Items: items, Replenishment: Replenishment(items)}, nil
}

func (uc *ReportUseCase) filename(c entity.Company, ext string) string {
	return fmt.Sprintf("inventario-%d-%s.%s", c.ID, uc.now().Format("20060102"), ext)
}

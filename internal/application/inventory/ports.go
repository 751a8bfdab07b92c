package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// StockReport datos que necesitan los generadores de reportes.
type StockReport struct {
	Company       entity.Company
	Items         []entity.Inventory
	Replenishment []ReplenishmentSuggestion
}

// StockPDFGenerator genera el reporte de existencias en PDF.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}

// StockSpreadsheetExporter exporta el inventario a una hoja de cálculo.
type StockSpreadsheetExporter interface {
	ExportInventory(ctx context.Context, report StockReport) ([]byte, error)
}

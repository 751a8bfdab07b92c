// Package xlsx exporta el inventario de una empresa a una hoja de cálculo.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appinventory "github.com/jhoicas/Inventario-web/internal/application/inventory"
)

// Hojas del libro exportado.
const (
	SheetName              = "Inventario"
	ReplenishmentSheetName = "Reposición"
)

var replenishmentHeaders = []string{
	"Prioridad", "ID", "Producto", "Existencia", "Punto de reorden", "Stock ideal",
	"Cantidad sugerida", "Precio", "Costo estimado",
}

var headers = []string{
	"ID", "Producto", "Descripción", "Apertura", "Entradas", "Salidas", "Cierre",
	"Stock mínimo", "Stock de seguridad", "Punto de reorden", "Precio", "Valor", "Estado",
}

// ExcelizeExporter implementa inventory.StockSpreadsheetExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportInventory una fila por ítem más una fila final con el valor total.
func (e *ExcelizeExporter) ExportInventory(_ context.Context, report appinventory.StockReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range headers {
		if err := f.SetCellValue(SheetName, cell(i, 1), h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, cell(0, 1), cell(len(headers)-1, 1), header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	for r, it := range report.Items {
		values := []any{
			it.ID, it.ProductName, it.Description, it.OpeningStock, it.Receipts, it.Issues,
			it.ClosingStock, it.MinimumStock, it.BufferStock, it.ReorderPoint,
			it.Price.InexactFloat64(), it.StockValue.InexactFloat64(), string(it.Status()),
		}
		if err := f.SetSheetRow(SheetName, cell(0, r+2), &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", r+2, err)
		}
	}

	last := len(report.Items) + 1
	total := last + 1
	if err := f.SetCellValue(SheetName, cell(10, total), "Total"); err != nil {
		return nil, err
	}
	if len(report.Items) > 0 {
		if err := f.SetCellFormula(SheetName, cell(11, total), fmt.Sprintf("SUM(L2:L%d)", last)); err != nil {
			return nil, fmt.Errorf("xlsx: total: %w", err)
		}
	} else if err := f.SetCellValue(SheetName, cell(11, total), 0); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, cell(10, 2), cell(11, total), money); err != nil {
		return nil, fmt.Errorf("xlsx: formato moneda: %w", err)
	}

	if err := writeReplenishment(f, report.Replenishment, header, money); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	_ = f.SetColWidth(SheetName, "B", "C", 28)
	_ = f.SetColWidth(SheetName, "D", "M", 14)
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: inmovilizar cabecera: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeReplenishment segunda hoja con los pedidos sugeridos.
func writeReplenishment(f *excelize.File, rows []appinventory.ReplenishmentSuggestion, header, money int) error {
	if _, err := f.NewSheet(ReplenishmentSheetName); err != nil {
		return fmt.Errorf("xlsx: hoja de reposición: %w", err)
	}
	hdr := make([]any, len(replenishmentHeaders))
	for i, h := range replenishmentHeaders {
		hdr[i] = h
	}
	if err := f.SetSheetRow(ReplenishmentSheetName, "A1", &hdr); err != nil {
		return fmt.Errorf("xlsx: reposición cabecera: %w", err)
	}
	if err := f.SetCellStyle(ReplenishmentSheetName, "A1", cell(len(hdr)-1, 1), header); err != nil {
		return err
	}
	for r, s := range rows {
		values := []any{
			s.Priority, s.ItemID, s.ProductName, s.CurrentStock, s.ReorderPoint, s.IdealStock,
			s.SuggestedQty, s.UnitPrice.InexactFloat64(), s.EstimatedCost.InexactFloat64(),
		}
		if err := f.SetSheetRow(ReplenishmentSheetName, cell(0, r+2), &values); err != nil {
			return fmt.Errorf("xlsx: reposición fila %d: %w", r+2, err)
		}
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(ReplenishmentSheetName, "H2", cell(8, len(rows)+1), money); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(ReplenishmentSheetName, "C", "C", 28)
	return nil
}

// cell col base 0, fila base 1.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

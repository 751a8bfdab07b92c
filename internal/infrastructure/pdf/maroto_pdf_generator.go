// Package pdf genera el reporte de existencias de una empresa.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Ubicación  │  Fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Apert. | Entr. | Sal. | Cierre | ...     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ítems / Agotados / Por reordenar / Valor total    │
//	│  REPOSICIÓN: Prioridad | Producto | Sugerido | Costo        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appinventory "github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.StockPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. Los números se imprimen con separadores en español.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.Spanish), now: time.Now}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, report appinventory.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(report.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report.Company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("La empresa no tiene ítems de inventario.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(g.tableDetailRows(report.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report.Items))

	if len(report.Replenishment) > 0 {
		m.AddRows(g.replenishmentRows(report.Replenishment)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(company entity.Company) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ubicación: "+nonEmpty(company.Location, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera con fondo primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Apertura", 1, align.Right),
		h("Entradas", 1, align.Right),
		h("Salidas", 1, align.Right),
		h("Cierre", 1, align.Right),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
		h("Estado", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por ítem.
func (g *MarotoPDFGenerator) tableDetailRows(items []entity.Inventory) []core.Row {
	result := make([]core.Row, 0, len(items))
	num := func(n int) core.Col {
		return col.New(1).Add(text.New(g.printer.Sprintf("%d", n),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}))
	}
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			num(it.OpeningStock),
			num(it.Receipts),
			num(it.Issues),
			num(it.ClosingStock),
			col.New(2).Add(text.New("$"+g.money(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+g.money(it.StockValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(string(it.Status()),
				props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1, Color: statusColor(it.Status())})),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) totalsRow(items []entity.Inventory) core.Row {
	var out, reorder int
	for _, it := range items {
		switch it.Status() {
		case entity.StockOutOfStock:
			out++
		case entity.StockReorder:
			reorder++
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Ítems:"),
			label("Agotados:"),
			label("Por reordenar:"),
			text.New("VALOR TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 15,
			}),
		),
		col.New(3).Add(
			value(g.printer.Sprintf("%d", len(items))),
			value(g.printer.Sprintf("%d", out)),
			value(g.printer.Sprintf("%d", reorder)),
			text.New("$"+g.money(entity.TotalStockValue(items)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 15,
			}),
		),
	)
}

// replenishmentRows: pedidos sugeridos por prioridad y su costo total.
func (g *MarotoPDFGenerator) replenishmentRows(list []appinventory.ReplenishmentSuggestion) []core.Row {
	cell := func(s string, size int, a align.Type, style fontstyle.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Style: style, Color: color, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(text.New("REPOSICIÓN SUGERIDA", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4,
		}))),
		row.New(8).Add(
			cell("#", 1, align.Center, fontstyle.Bold, colorWhite),
			cell("Producto", 4, align.Left, fontstyle.Bold, colorWhite),
			cell("Existencia", 1, align.Right, fontstyle.Bold, colorWhite),
			cell("Ideal", 1, align.Right, fontstyle.Bold, colorWhite),
			cell("Sugerido", 1, align.Right, fontstyle.Bold, colorWhite),
			cell("Precio", 2, align.Right, fontstyle.Bold, colorWhite),
			cell("Costo", 2, align.Right, fontstyle.Bold, colorWhite),
		).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	}
	for _, s := range list {
		color := colorGray
		if s.CurrentStock == 0 {
			color = colorDanger
		}
		rows = append(rows, row.New(7).Add(
			cell(g.printer.Sprintf("%d", s.Priority), 1, align.Center, fontstyle.Bold, color),
			cell(s.ProductName, 4, align.Left, fontstyle.Normal, nil),
			cell(g.printer.Sprintf("%d", s.CurrentStock), 1, align.Right, fontstyle.Normal, color),
			cell(g.printer.Sprintf("%d", s.IdealStock), 1, align.Right, fontstyle.Normal, nil),
			cell(g.printer.Sprintf("%d", s.SuggestedQty), 1, align.Right, fontstyle.Bold, nil),
			cell("$"+g.money(s.UnitPrice), 2, align.Right, fontstyle.Normal, nil),
			cell("$"+g.money(s.EstimatedCost), 2, align.Right, fontstyle.Normal, nil),
		))
	}
	rows = append(rows, row.New(9).Add(
		col.New(8),
		cell("COSTO ESTIMADO:", 2, align.Right, fontstyle.Bold, colorPrimary),
		cell("$"+g.money(appinventory.TotalEstimatedCost(list)), 2, align.Right, fontstyle.Bold, colorPrimary),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(s entity.StockStatus) *props.Color {
	switch s {
	case entity.StockOutOfStock:
		return colorDanger
	case entity.StockReorder:
		return colorWarning
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con separador de miles y dos decimales. Ej: 1234.5 → "1.234,50".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

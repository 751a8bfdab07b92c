package entity

import "github.com/shopspring/decimal"

// Valores de IsReorder tal como los serializa el API.
const (
	ReorderYes = "True"
	ReorderNo  = "False"
)

// Valores por defecto que el API asigna a un ítem recién creado.
const (
	DefaultReorderPoint = 10
)

// StockStatus estado de visualización de un ítem.
type StockStatus string

const (
	StockOutOfStock StockStatus = "Agotado"
	StockReorder    StockStatus = "Reordenar"
	StockOK         StockStatus = "OK"
)

// Inventory ítem de inventario de una empresa para un periodo.
// ClosingStock = OpeningStock + Receipts - Issues; QtyInStock refleja ClosingStock.
type Inventory struct {
	ID           int64
	ProductName  string
	Description  string
	QtyInStock   int
	Price        decimal.Decimal
	StockValue   decimal.Decimal
	ReorderPoint int
	OpeningStock int
	Receipts     int
	Issues       int
	ClosingStock int
	MinimumStock int
	BufferStock  int
	IsReorder    string // "True" | "False"
}

// NeedsReorder indica si el API marcó el ítem para reorden.
func (i Inventory) NeedsReorder() bool {
	return i.IsReorder == ReorderYes
}

// OutOfStock sin existencias.
func (i Inventory) OutOfStock() bool {
	return i.QtyInStock == 0
}

// Status estado a mostrar: agotado tiene prioridad sobre reorden.
func (i Inventory) Status() StockStatus {
	switch {
	case i.OutOfStock():
		return StockOutOfStock
	case i.NeedsReorder():
		return StockReorder
	default:
		return StockOK
	}
}

// Consistent verifica la ecuación de cierre del periodo.
func (i Inventory) Consistent() bool {
	return i.ClosingStock == i.OpeningStock+i.Receipts-i.Issues
}

// Recalculate aplica las mismas reglas que el API al guardar un ítem.
func (i Inventory) Recalculate() Inventory {
	i.ClosingStock = i.OpeningStock + i.Receipts - i.Issues
	i.QtyInStock = i.ClosingStock
	i.ReorderPoint = i.MinimumStock + i.BufferStock
	i.StockValue = decimal.NewFromInt(int64(i.ClosingStock)).Mul(i.Price)
	if i.QtyInStock > 0 && i.QtyInStock < i.ReorderPoint {
		i.IsReorder = ReorderYes
	} else {
		i.IsReorder = ReorderNo
	}
	return i
}

// RolledOver prepara el ítem para el siguiente periodo: el cierre pasa a ser la apertura
// y los movimientos vuelven a cero. No recalcula; eso lo hace el API.
func (i Inventory) RolledOver() Inventory {
	i.Receipts = 0
	i.Issues = 0
	i.OpeningStock = i.ClosingStock
	return i
}

// InventoryPatch campos editables; nil = sin cambio. Precio cero no se aplica.
type InventoryPatch struct {
	ProductName  *string
	Description  *string
	Price        *decimal.Decimal
	Receipts     *int
	Issues       *int
	MinimumStock *int
	BufferStock  *int
	OpeningStock *int
}

// Apply devuelve una copia de i con los campos presentes en p.
func (p InventoryPatch) Apply(i Inventory) Inventory {
	if p.ProductName != nil {
		i.ProductName = *p.ProductName
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Price != nil && !p.Price.IsZero() {
		i.Price = *p.Price
	}
	if p.Receipts != nil {
		i.Receipts = *p.Receipts
	}
	if p.Issues != nil {
		i.Issues = *p.Issues
	}
	if p.MinimumStock != nil {
		i.MinimumStock = *p.MinimumStock
	}
	if p.BufferStock != nil {
		i.BufferStock = *p.BufferStock
	}
	if p.OpeningStock != nil {
		i.OpeningStock = *p.OpeningStock
	}
	return i
}

// TotalStockValue suma StockValue de los ítems.
func TotalStockValue(items []Inventory) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.StockValue)
	}
	return total
}

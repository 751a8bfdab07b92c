package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// idealStockFactor stock objetivo = punto de reorden × 1,5.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReplenishmentSuggestion pedido sugerido para un ítem agotado o por reordenar.
type ReplenishmentSuggestion struct {
	Priority      int // 1 = más urgente
	ItemID        int64
	ProductName   string
	CurrentStock  int
	ReorderPoint  int
	IdealStock    int
	SuggestedQty  int
	UnitPrice     decimal.Decimal
	EstimatedCost decimal.Decimal
}

// Replenishment genera la lista de reposición a partir del inventario de la empresa.
// Sólo entran los ítems agotados o marcados para reorden. Orden: agotados primero,
// luego mayor déficit relativo al punto de reorden y, a igualdad, mayor costo estimado.
func Replenishment(items []entity.Inventory) []ReplenishmentSuggestion {
	out := make([]ReplenishmentSuggestion, 0)
	for _, it := range items {
		if it.Status() == entity.StockOK {
			continue
		}
		reorder := it.ReorderPoint
		if reorder <= 0 {
			reorder = it.MinimumStock + it.BufferStock
		}
		if reorder <= 0 {
			reorder = entity.DefaultReorderPoint
		}
		ideal := int(decimal.NewFromInt(int64(reorder)).Mul(idealStockFactor).Ceil().IntPart())
		qty := ideal - it.QtyInStock
		if qty < 0 {
			qty = 0
		}
		out = append(out, ReplenishmentSuggestion{
			ItemID:        it.ID,
			ProductName:   it.ProductName,
			CurrentStock:  it.QtyInStock,
			ReorderPoint:  reorder,
			IdealStock:    ideal,
			SuggestedQty:  qty,
			UnitPrice:     it.Price,
			EstimatedCost: it.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.CurrentStock == 0) != (b.CurrentStock == 0) {
			return a.CurrentStock == 0
		}
		da, db := deficit(a), deficit(b)
		if !da.Equal(db) {
			return da.GreaterThan(db)
		}
		return a.EstimatedCost.GreaterThan(b.EstimatedCost)
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}

// deficit fracción del punto de reorden que falta cubrir (0..1).
func deficit(s ReplenishmentSuggestion) decimal.Decimal {
	if s.ReorderPoint <= 0 {
		return decimal.Zero
	}
	gap := decimal.NewFromInt(int64(s.ReorderPoint - s.CurrentStock))
	return gap.Div(decimal.NewFromInt(int64(s.ReorderPoint)))
}

// TotalEstimatedCost costo del pedido completo.
func TotalEstimatedCost(s []ReplenishmentSuggestion) decimal.Decimal {
	total := decimal.Zero
	for _, it := range s {
		total = total.Add(it.EstimatedCost)
	}
	return total
}

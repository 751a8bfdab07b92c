package entity_test

import (
	"testing"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInventory_Status(t *testing.T) {
	cases := []struct {
		name string
		item entity.Inventory
		want entity.StockStatus
	}{
		{"agotado", entity.Inventory{QtyInStock: 0, IsReorder: entity.ReorderYes}, entity.StockOutOfStock},
		{"reordenar", entity.Inventory{QtyInStock: 3, IsReorder: entity.ReorderYes}, entity.StockReorder},
		{"ok", entity.Inventory{QtyInStock: 30, IsReorder: entity.ReorderNo}, entity.StockOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.Status())
		})
	}
}

func TestInventory_Recalculate(t *testing.T) {
	item := entity.Inventory{
		OpeningStock: 10,
		Receipts:     5,
		Issues:       12,
		MinimumStock: 4,
		BufferStock:  2,
		Price:        decimal.RequireFromString("2.50"),
	}

	got := item.Recalculate()

	assert.Equal(t, 3, got.ClosingStock)
	assert.Equal(t, 3, got.QtyInStock)
	assert.Equal(t, 6, got.ReorderPoint)
	assert.True(t, decimal.RequireFromString("7.5").Equal(got.StockValue))
	assert.Equal(t, entity.ReorderYes, got.IsReorder)
	assert.True(t, got.Consistent())
}

func TestInventory_Recalculate_ZeroStockIsNotReorder(t *testing.T) {
	got := entity.Inventory{MinimumStock: 5, BufferStock: 5}.Recalculate()

	assert.Equal(t, 0, got.QtyInStock)
	assert.Equal(t, entity.ReorderNo, got.IsReorder)
}

func TestInventory_RolledOver(t *testing.T) {
	item := entity.Inventory{OpeningStock: 4, Receipts: 10, Issues: 4, ClosingStock: 10}

	got := item.RolledOver()

	assert.Equal(t, 10, got.OpeningStock)
	assert.Zero(t, got.Receipts)
	assert.Zero(t, got.Issues)
	assert.Equal(t, 10, got.ClosingStock, "el cierre no se toca")
	assert.True(t, got.Consistent())
	assert.Equal(t, 4, item.OpeningStock, "no modifica el original")
}

func TestInventoryPatch_Apply(t *testing.T) {
	zero := decimal.Zero
	name := "Tornillo"
	receipts := 7
	base := entity.Inventory{ProductName: "Tuerca", Price: decimal.NewFromInt(3), Receipts: 1}

	got := entity.InventoryPatch{ProductName: &name, Price: &zero, Receipts: &receipts}.Apply(base)

	assert.Equal(t, "Tornillo", got.ProductName)
	assert.True(t, decimal.NewFromInt(3).Equal(got.Price), "precio cero se ignora")
	assert.Equal(t, 7, got.Receipts)
}

func TestTotalStockValue(t *testing.T) {
	items := []entity.Inventory{
		{StockValue: decimal.RequireFromString("10.25")},
		{StockValue: decimal.RequireFromString("4.75")},
	}
	assert.True(t, decimal.NewFromInt(15).Equal(entity.TotalStockValue(items)))
}

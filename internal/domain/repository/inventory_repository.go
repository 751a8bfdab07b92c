package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// InventoryRepository define el puerto hacia el recurso de inventario del API.
// Los filtros (Search, OutOfStock, ReorderPoint) se resuelven en el servidor.
type InventoryRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Inventory, error)
	Create(ctx context.Context, companyID int64, item entity.Inventory) (*entity.Inventory, error)
	Update(ctx context.Context, id int64, item entity.Inventory) (*entity.Inventory, error)
	Delete(ctx context.Context, id int64) error

	Search(ctx context.Context, companyID int64, productName string) ([]entity.Inventory, error)
	OutOfStock(ctx context.Context, companyID int64) ([]entity.Inventory, error)
	ReorderPoint(ctx context.Context, companyID int64) ([]entity.Inventory, error)
}

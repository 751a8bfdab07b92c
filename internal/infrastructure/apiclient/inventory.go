package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// InventoryClient recurso /inventories.
type InventoryClient struct {
	c *Client
}

var _ repository.InventoryRepository = (*InventoryClient)(nil)

func NewInventoryClient(c *Client) *InventoryClient {
	return &InventoryClient{c: c}
}

type inventoryJSON struct {
	ID           int64           `json:"id,omitempty"`
	ProductName  string          `json:"productName"`
	Description  string          `json:"description"`
	QtyInStock   int             `json:"qtyInStock"`
	Price        decimal.Decimal `json:"price"`
	StockValue   decimal.Decimal `json:"stockValue"`
	ReorderPoint int             `json:"reorderPoint"`
	OpeningStock int             `json:"openingStock"`
	Receipts     int             `json:"receipts"`
	Issues       int             `json:"issues"`
	ClosingStock int             `json:"closingStock"`
	MinimumStock int             `json:"minimumStock"`
	BufferStock  int             `json:"bufferStock"`
	IsReorder    string          `json:"isReorder"`
}

func (j inventoryJSON) toEntity() entity.Inventory {
	return entity.Inventory{
		ID:           j.ID,
		ProductName:  j.ProductName,
		Description:  j.Description,
		QtyInStock:   j.QtyInStock,
		Price:        j.Price,
		StockValue:   j.StockValue,
		ReorderPoint: j.ReorderPoint,
		OpeningStock: j.OpeningStock,
		Receipts:     j.Receipts,
		Issues:       j.Issues,
		ClosingStock: j.ClosingStock,
		MinimumStock: j.MinimumStock,
		BufferStock:  j.BufferStock,
		IsReorder:    j.IsReorder,
	}
}

func inventoryFromEntity(i entity.Inventory) inventoryJSON {
	return inventoryJSON{
		ID:           i.ID,
		ProductName:  i.ProductName,
		Description:  i.Description,
		QtyInStock:   i.QtyInStock,
		Price:        i.Price,
		StockValue:   i.StockValue,
		ReorderPoint: i.ReorderPoint,
		OpeningStock: i.OpeningStock,
		Receipts:     i.Receipts,
		Issues:       i.Issues,
		ClosingStock: i.ClosingStock,
		MinimumStock: i.MinimumStock,
		BufferStock:  i.BufferStock,
		IsReorder:    i.IsReorder,
	}
}

func (r *InventoryClient) list(ctx context.Context, path string, opts ...requestOption) ([]entity.Inventory, error) {
	var out []inventoryJSON
	if err := r.c.do(ctx, http.MethodGet, path, nil, &out, opts...); err != nil {
		return nil, err
	}
	items := make([]entity.Inventory, 0, len(out))
	for _, j := range out {
		items = append(items, j.toEntity())
	}
	return items, nil
}

func (r *InventoryClient) ListByCompany(ctx context.Context, companyID int64) ([]entity.Inventory, error) {
	return r.list(ctx, idPath("/inventories", companyID))
}

func (r *InventoryClient) Create(ctx context.Context, companyID int64, item entity.Inventory) (*entity.Inventory, error) {
	var out inventoryJSON
	if err := r.c.do(ctx, http.MethodPost, idPath("/inventories", companyID), inventoryFromEntity(item), &out); err != nil {
		return nil, err
	}
	i := out.toEntity()
	return &i, nil
}

func (r *InventoryClient) Update(ctx context.Context, id int64, item entity.Inventory) (*entity.Inventory, error) {
	var out inventoryJSON
	if err := r.c.do(ctx, http.MethodPut, idPath("/inventories", id), inventoryFromEntity(item), &out); err != nil {
		return nil, err
	}
	i := out.toEntity()
	return &i, nil
}

func (r *InventoryClient) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/inventories", id), nil, nil)
}

func (r *InventoryClient) Search(ctx context.Context, companyID int64, productName string) ([]entity.Inventory, error) {
	return r.list(ctx, idPath("/inventories", companyID, "search"), withQuery(url.Values{"productName": {productName}}))
}

func (r *InventoryClient) OutOfStock(ctx context.Context, companyID int64) ([]entity.Inventory, error) {
	return r.list(ctx, idPath("/inventories", companyID, "out-of-stock"))
}

func (r *InventoryClient) ReorderPoint(ctx context.Context, companyID int64) ([]entity.Inventory, error) {
	return r.list(ctx, idPath("/inventories", companyID, "reorder-point"))
}

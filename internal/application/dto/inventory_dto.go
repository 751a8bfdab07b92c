package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// CreateInventoryRequest formulario de alta. El API inicia existencias y movimientos en cero.
type CreateInventoryRequest struct {
	ProductName  string `form:"productName" label:"producto" validate:"required,max=200"`
	Description  string `form:"description" label:"descripción" validate:"max=1000"`
	Price        string `form:"price" label:"precio" validate:"required,numeric"`
	MinimumStock int    `form:"minimumStock" label:"stock mínimo" validate:"min=0"`
	BufferStock  int    `form:"bufferStock" label:"stock de seguridad" validate:"min=0"`
}

func (r CreateInventoryRequest) ToEntity() (entity.Inventory, error) {
	price, err := parseMoney(r.Price)
	if err != nil {
		return entity.Inventory{}, err
	}
	return entity.Inventory{
		ProductName:  strings.TrimSpace(r.ProductName),
		Description:  strings.TrimSpace(r.Description),
		Price:        *price,
		MinimumStock: r.MinimumStock,
		BufferStock:  r.BufferStock,
	}, nil
}

// UpdateInventoryRequest formulario de edición; campos vacíos no se modifican.
type UpdateInventoryRequest struct {
	ProductName  string `form:"productName" label:"producto" validate:"max=200"`
	Description  string `form:"description" label:"descripción" validate:"max=1000"`
	Price        string `form:"price" label:"precio" validate:"omitempty,numeric"`
	Receipts     string `form:"receipts" label:"entradas" validate:"omitempty,numeric"`
	Issues       string `form:"issues" label:"salidas" validate:"omitempty,numeric"`
	MinimumStock string `form:"minimumStock" label:"stock mínimo" validate:"omitempty,numeric"`
	BufferStock  string `form:"bufferStock" label:"stock de seguridad" validate:"omitempty,numeric"`
	OpeningStock string `form:"openingStock" label:"stock inicial" validate:"omitempty,numeric"`
}

func (r UpdateInventoryRequest) ToPatch() (entity.InventoryPatch, error) {
	p := entity.InventoryPatch{
		ProductName: optString(r.ProductName),
		Description: optString(r.Description),
	}
	if strings.TrimSpace(r.Price) != "" {
		price, err := parseMoney(r.Price)
		if err != nil {
			return p, err
		}
		p.Price = price
	}
	ints := []struct {
		raw string
		dst **int
	}{
		{r.Receipts, &p.Receipts},
		{r.Issues, &p.Issues},
		{r.MinimumStock, &p.MinimumStock},
		{r.BufferStock, &p.BufferStock},
		{r.OpeningStock, &p.OpeningStock},
	}
	for _, f := range ints {
		n, err := optCount(f.raw)
		if err != nil {
			return p, err
		}
		*f.dst = n
	}
	return p, nil
}

// InventoryFilterQuery parámetros de la vista de inventario (?out_of_stock=on&reorder=on&q=...).
type InventoryFilterQuery struct {
	OutOfStock bool
	Reorder    bool
	Search     string
}

// ParseInventoryFilter interpreta los valores crudos del query string.
// Un checkbox HTML envía "on"; también se aceptan "true" y "1".
func ParseInventoryFilter(outOfStock, reorder, search string) InventoryFilterQuery {
	return InventoryFilterQuery{
		OutOfStock: checked(outOfStock),
		Reorder:    checked(reorder),
		Search:     search,
	}
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func optCount(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: cantidad %q no válida", domain.ErrInvalidInput, s)
	}
	return &n, nil
}

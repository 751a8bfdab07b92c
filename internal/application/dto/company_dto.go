package dto

import (
	"strings"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// UpdateCompanyRequest formulario de edición; campos vacíos no se modifican.
type UpdateCompanyRequest struct {
	CompanyName string `form:"companyName" label:"empresa" validate:"max=200"`
	Capacity    string `form:"capacity" label:"capacidad" validate:"max=50"`
	Location    string `form:"location" label:"ubicación" validate:"max=200"`
}

func (r UpdateCompanyRequest) ToPatch() entity.CompanyPatch {
	return entity.CompanyPatch{
		Name:     optString(r.CompanyName),
		Capacity: optString(r.Capacity),
		Location: optString(r.Location),
	}
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

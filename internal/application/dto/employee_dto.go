package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// CreateEmployeeRequest formulario de alta de empleado.
type CreateEmployeeRequest struct {
	Name   string `form:"name" label:"nombre" validate:"required,max=200"`
	Grade  string `form:"grade" label:"cargo" validate:"required,max=100"`
	Dept   string `form:"dept" label:"departamento" validate:"required,max=100"`
	Salary string `form:"salary" label:"salario" validate:"required,numeric"`
}

func (r CreateEmployeeRequest) ToEntity() (entity.Employee, error) {
	salary, err := parseMoney(r.Salary)
	if err != nil {
		return entity.Employee{}, err
	}
	return entity.Employee{
		Name:   strings.TrimSpace(r.Name),
		Grade:  strings.TrimSpace(r.Grade),
		Dept:   strings.TrimSpace(r.Dept),
		Salary: *salary,
	}, nil
}

// UpdateEmployeeRequest campos vacíos no se modifican.
type UpdateEmployeeRequest struct {
	Name   string `form:"name" label:"nombre" validate:"max=200"`
	Grade  string `form:"grade" label:"cargo" validate:"max=100"`
	Dept   string `form:"dept" label:"departamento" validate:"max=100"`
	Salary string `form:"salary" label:"salario" validate:"omitempty,numeric"`
}

func (r UpdateEmployeeRequest) ToPatch() (entity.EmployeePatch, error) {
	p := entity.EmployeePatch{
		Name:  optString(r.Name),
		Grade: optString(r.Grade),
		Dept:  optString(r.Dept),
	}
	if strings.TrimSpace(r.Salary) != "" {
		salary, err := parseMoney(r.Salary)
		if err != nil {
			return p, err
		}
		p.Salary = salary
	}
	return p, nil
}

// parseMoney valores monetarios no negativos.
func parseMoney(s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: valor %q no es numérico", domain.ErrInvalidInput, s)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: valor %q negativo", domain.ErrInvalidInput, s)
	}
	return &d, nil
}

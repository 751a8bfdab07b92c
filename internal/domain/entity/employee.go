package entity

import "github.com/shopspring/decimal"

// Employee empleado de una empresa.
type Employee struct {
	ID     int64
	Name   string
	Grade  string
	Dept   string
	Salary decimal.Decimal
}

// EmployeePatch campos editables; nil = sin cambio.
// El API ignora salario cero, así que tampoco lo enviamos como cambio.
type EmployeePatch struct {
	Name   *string
	Grade  *string
	Dept   *string
	Salary *decimal.Decimal
}

// Apply devuelve una copia de e con los campos presentes en p.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Grade != nil {
		e.Grade = *p.Grade
	}
	if p.Dept != nil {
		e.Dept = *p.Dept
	}
	if p.Salary != nil && !p.Salary.IsZero() {
		e.Salary = *p.Salary
	}
	return e
}

package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// EmployeeClient recurso /employees.
type EmployeeClient struct {
	c *Client
}

var _ repository.EmployeeRepository = (*EmployeeClient)(nil)

func NewEmployeeClient(c *Client) *EmployeeClient {
	return &EmployeeClient{c: c}
}

type employeeJSON struct {
	ID     int64           `json:"id,omitempty"`
	Name   string          `json:"name"`
	Grade  string          `json:"grade"`
	Dept   string          `json:"dept"`
	Salary decimal.Decimal `json:"salary"`
}

func (j employeeJSON) toEntity() entity.Employee {
	return entity.Employee{ID: j.ID, Name: j.Name, Grade: j.Grade, Dept: j.Dept, Salary: j.Salary}
}

func employeeFromEntity(e entity.Employee) employeeJSON {
	return employeeJSON{ID: e.ID, Name: e.Name, Grade: e.Grade, Dept: e.Dept, Salary: e.Salary}
}

func (r *EmployeeClient) ListByCompany(ctx context.Context, companyID int64) ([]entity.Employee, error) {
	var out []employeeJSON
	if err := r.c.do(ctx, http.MethodGet, idPath("/employees", companyID), nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Employee, 0, len(out))
	for _, j := range out {
		list = append(list, j.toEntity())
	}
	return list, nil
}

func (r *EmployeeClient) Create(ctx context.Context, companyID int64, employee entity.Employee) (*entity.Employee, error) {
	var out employeeJSON
	if err := r.c.do(ctx, http.MethodPost, idPath("/employees", companyID), employeeFromEntity(employee), &out); err != nil {
		return nil, err
	}
	e := out.toEntity()
	return &e, nil
}

func (r *EmployeeClient) Update(ctx context.Context, id int64, employee entity.Employee) (*entity.Employee, error) {
	var out employeeJSON
	if err := r.c.do(ctx, http.MethodPut, idPath("/employees", id), employeeFromEntity(employee), &out); err != nil {
		return nil, err
	}
	e := out.toEntity()
	return &e, nil
}

func (r *EmployeeClient) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/employees", id), nil, nil)
}

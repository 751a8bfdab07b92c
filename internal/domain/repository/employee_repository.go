package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// EmployeeRepository define el puerto hacia el recurso de empleados del API.
type EmployeeRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Employee, error)
	Create(ctx context.Context, companyID int64, employee entity.Employee) (*entity.Employee, error)
	Update(ctx context.Context, id int64, employee entity.Employee) (*entity.Employee, error)
	Delete(ctx context.Context, id int64) error
}

package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Mensajes de la vista de empleados.
const (
	MsgEmployeesLoadFailed = "No se pudo cargar la información de la empresa o de sus empleados. Intente de nuevo."
	MsgEmployeeAddFailed   = "No se pudo agregar el empleado. Intente de nuevo."
	MsgEmployeeUpdFailed   = "No se pudo actualizar el empleado. Intente de nuevo."
	MsgEmployeeDelFailed   = "No se pudo eliminar el empleado. Intente de nuevo."
	MsgCompanyMissing      = "Falta el id de la empresa. No se puede agregar."
)

// EmployeeList estado de la vista de empleados de una empresa.
type EmployeeList struct {
	CompanyID int64
	Company   *entity.Company
	Employees []entity.Employee
	Message   string
	Notice    string
}

func (l *EmployeeList) find(id int64) (int, bool) {
	for i, e := range l.Employees {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// EmployeeUseCase casos de uso de la vista de empleados.
type EmployeeUseCase struct {
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
}

func NewEmployeeUseCase(companies repository.CompanyRepository, employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{companies: companies, employees: employees}
}

// Load resuelve la empresa y trae en paralelo sus datos y sus empleados.
// La vista sólo se considera cargada cuando ambas llamadas terminan.
func (uc *EmployeeUseCase) Load(ctx context.Context, companyID int64) (*EmployeeList, error) {
	l := &EmployeeList{}
	id, err := ResolveCompanyID(ctx, uc.companies, companyID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("resolver empresa")
		l.Message = MsgEmployeesLoadFailed
		return l, err
	}
	l.CompanyID = id

	var (
		company   *entity.Company
		employees []entity.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = uc.companies.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = uc.employees.ListByCompany(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("company_id", id).Msg("cargar empleados")
		l.Message = MsgEmployeesLoadFailed
		return l, err
	}
	l.Company = company
	l.Employees = employees
	return l, nil
}

// Add crea el empleado en la empresa cargada y lo agrega al final de la lista.
func (uc *EmployeeUseCase) Add(ctx context.Context, l *EmployeeList, e entity.Employee) error {
	if l.Company == nil || l.Company.ID == 0 {
		l.Message = MsgCompanyMissing
		return domain.ErrMissingCompany
	}
	created, err := uc.employees.Create(ctx, l.Company.ID, e)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("agregar empleado")
		l.Message = MsgEmployeeAddFailed
		return err
	}
	l.Employees = append(l.Employees, *created)
	return nil
}

// Update reemplaza la entrada con la respuesta del API.
func (uc *EmployeeUseCase) Update(ctx context.Context, l *EmployeeList, id int64, patch entity.EmployeePatch) error {
	idx, ok := l.find(id)
	if !ok {
		l.Message = MsgEmployeeUpdFailed
		return fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
	}
	updated, err := uc.employees.Update(ctx, id, patch.Apply(l.Employees[idx]))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("employee_id", id).Msg("actualizar empleado")
		l.Message = MsgEmployeeUpdFailed
		return err
	}
	if i, ok := l.find(updated.ID); ok {
		l.Employees[i] = *updated
	}
	return nil
}

// Delete quita el empleado de la lista tras confirmarse el borrado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, l *EmployeeList, id int64) error {
	if err := uc.employees.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("employee_id", id).Msg("eliminar empleado")
		l.Message = MsgEmployeeDelFailed
		return err
	}
	kept := l.Employees[:0]
	for _, e := range l.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.Employees = kept
	return nil
}

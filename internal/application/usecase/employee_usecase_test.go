package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

func TestEmployeeUseCase_LoadFallsBackToOwnCompany(t *testing.T) {
	companies := newFakeCompanies(entity.Company{ID: 4, Name: "Acme"})
	companies.ownID = 4
	employees := &fakeEmployees{byComp: map[int64][]entity.Employee{4: {{ID: 1, Name: "Luis"}}}}
	uc := usecase.NewEmployeeUseCase(companies, employees)

	l, err := uc.Load(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(4), l.CompanyID)
	require.NotNil(t, l.Company)
	assert.Equal(t, "Acme", l.Company.Name)
	assert.Len(t, l.Employees, 1)
	assert.Contains(t, companies.calls, "UserCompanyID")
}

func TestEmployeeUseCase_LoadUsesRouteID(t *testing.T) {
	companies := newFakeCompanies(entity.Company{ID: 2})
	uc := usecase.NewEmployeeUseCase(companies, &fakeEmployees{})

	l, err := uc.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), l.CompanyID)
	assert.NotContains(t, companies.calls, "UserCompanyID")
}

func TestEmployeeUseCase_LoadJoinFailure(t *testing.T) {
	companies := newFakeCompanies(entity.Company{ID: 2})
	uc := usecase.NewEmployeeUseCase(companies, &fakeEmployees{err: errors.New("caído")})

	l, err := uc.Load(context.Background(), 2)
	assert.Error(t, err)
	assert.Equal(t, usecase.MsgEmployeesLoadFailed, l.Message)
	assert.Nil(t, l.Company, "sin datos parciales")
}

func TestEmployeeUseCase_AddWithoutCompany(t *testing.T) {
	employees := &fakeEmployees{}
	uc := usecase.NewEmployeeUseCase(newFakeCompanies(), employees)
	l := &usecase.EmployeeList{}

	err := uc.Add(context.Background(), l, entity.Employee{Name: "Luis"})
	assert.ErrorIs(t, err, domain.ErrMissingCompany)
	assert.Equal(t, usecase.MsgCompanyMissing, l.Message)
	assert.Zero(t, employees.nextID, "no se llama al API")
}

func TestEmployeeUseCase_MutationsUpdateList(t *testing.T) {
	companies := newFakeCompanies(entity.Company{ID: 3})
	employees := &fakeEmployees{}
	uc := usecase.NewEmployeeUseCase(companies, employees)
	ctx := context.Background()
	l, err := uc.Load(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, uc.Add(ctx, l, entity.Employee{Name: "Luis", Salary: decimal.NewFromInt(100)}))
	require.NoError(t, uc.Add(ctx, l, entity.Employee{Name: "Eva", Salary: decimal.NewFromInt(200)}))
	require.Len(t, l.Employees, 2)
	assert.Equal(t, "Eva", l.Employees[1].Name, "se agrega al final")

	dept := "Ventas"
	zero := decimal.Zero
	require.NoError(t, uc.Update(ctx, l, 1, entity.EmployeePatch{Dept: &dept, Salary: &zero}))
	assert.Equal(t, "Ventas", l.Employees[0].Dept)
	assert.True(t, decimal.NewFromInt(100).Equal(l.Employees[0].Salary), "salario cero no cambia")

	require.NoError(t, uc.Delete(ctx, l, 1))
	require.Len(t, l.Employees, 1)
	assert.Equal(t, int64(2), l.Employees[0].ID)
}

func TestEmployeeUseCase_DeleteFailureKeepsList(t *testing.T) {
	employees := &fakeEmployees{err: errors.New("boom")}
	uc := usecase.NewEmployeeUseCase(newFakeCompanies(), employees)
	l := &usecase.EmployeeList{Employees: []entity.Employee{{ID: 1}}}

	assert.Error(t, uc.Delete(context.Background(), l, 1))
	assert.Len(t, l.Employees, 1)
	assert.Equal(t, usecase.MsgEmployeeDelFailed, l.Message)
}

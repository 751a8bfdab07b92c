package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/infrastructure/apiclient"
)

func TestCompanyUseCase_DeleteBlockedKeepsCompany(t *testing.T) {
	repo := newFakeCompanies(entity.Company{ID: 1, Name: "Acme"}, entity.Company{ID: 2, Name: "Beta"})
	repo.deleteErr = &apiclient.APIError{Status: 500, Message: "constraint"}
	uc := usecase.NewCompanyUseCase(repo)
	ctx := context.Background()

	l, err := uc.Load(ctx)
	require.NoError(t, err)

	err = uc.Delete(ctx, l, 1)
	require.Error(t, err)
	assert.Len(t, l.Companies, 2, "la empresa sigue en la lista")
	assert.Equal(t, usecase.MsgCompanyDeleteBlocked, l.Message)
	assert.Contains(t, l.Message, "empleados")
	assert.Contains(t, l.Message, "inventario")
}

func TestCompanyUseCase_DeleteRemovesCompany(t *testing.T) {
	repo := newFakeCompanies(entity.Company{ID: 1, Name: "Acme"}, entity.Company{ID: 2, Name: "Beta"})
	uc := usecase.NewCompanyUseCase(repo)
	ctx := context.Background()
	l, err := uc.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, l, 1))

	require.Len(t, l.Companies, 1)
	assert.Equal(t, int64(2), l.Companies[0].ID)
	assert.Empty(t, l.Message)
}

func TestCompanyUseCase_DeleteUnauthorizedHasNoMessage(t *testing.T) {
	repo := newFakeCompanies(entity.Company{ID: 1})
	repo.deleteErr = &apiclient.APIError{Status: 401}
	uc := usecase.NewCompanyUseCase(repo)
	l := &usecase.CompanyList{Companies: []entity.Company{{ID: 1}}}

	err := uc.Delete(context.Background(), l, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, l.Message)
}

func TestCompanyUseCase_UpdateReplacesEntry(t *testing.T) {
	repo := newFakeCompanies(entity.Company{ID: 1, Name: "Acme", Capacity: "10", Location: "Cali"})
	uc := usecase.NewCompanyUseCase(repo)
	ctx := context.Background()
	l, err := uc.Load(ctx)
	require.NoError(t, err)

	loc := "Medellín"
	require.NoError(t, uc.Update(ctx, l, 1, entity.CompanyPatch{Location: &loc}))

	assert.Equal(t, "Medellín", l.Companies[0].Location)
	assert.Equal(t, "Acme", l.Companies[0].Name)
	assert.Equal(t, usecase.MsgCompanyUpdated, l.Notice)
}

func TestCompanyUseCase_UpdateUnknown(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newFakeCompanies())
	l := &usecase.CompanyList{}

	err := uc.Update(context.Background(), l, 9, entity.CompanyPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgCompanyUpdateFailed, l.Message)
}

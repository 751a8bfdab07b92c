package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

func TestDashboardUseCase_User(t *testing.T) {
	companies := newFakeCompanies(entity.Company{ID: 5, Name: "Acme"})
	companies.ownID = 5
	uc := usecase.NewDashboardUseCase(companies)

	d, err := uc.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme", d.Company.Name)
	assert.Equal(t, []string{"UserCompanyID", "GetByID"}, companies.calls, "llamadas en secuencia")
}

func TestDashboardUseCase_UserCompanyIDFails(t *testing.T) {
	companies := newFakeCompanies()
	companies.ownErr = domain.ErrUpstream
	uc := usecase.NewDashboardUseCase(companies)

	d, err := uc.User(context.Background())
	assert.Error(t, err)
	assert.Equal(t, usecase.MsgCompanyIDFailed, d.Message)
	assert.NotContains(t, companies.calls, "GetByID")
}

func TestDashboardUseCase_UserDetailsFail(t *testing.T) {
	companies := newFakeCompanies()
	companies.ownID = 77
	uc := usecase.NewDashboardUseCase(companies)

	d, err := uc.User(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgCompanyDetailsFailed, d.Message)
}

func TestDashboardUseCase_Admin(t *testing.T) {
	uc := usecase.NewDashboardUseCase(newFakeCompanies(entity.Company{ID: 1}, entity.Company{ID: 2}))

	d, err := uc.Admin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Companies)
}

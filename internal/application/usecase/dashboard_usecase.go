package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Mensajes de los paneles.
const (
	MsgCompanyIDFailed      = "No se pudo obtener la información de la empresa. Intente de nuevo."
	MsgCompanyDetailsFailed = "No se pudieron cargar los datos de la empresa. Intente de nuevo."
)

// UserDashboard panel del usuario: su empresa.
type UserDashboard struct {
	Company *entity.Company
	Message string
}

// AdminDashboard panel del administrador.
type AdminDashboard struct {
	Companies int
	Message   string
}

// DashboardUseCase datos de los paneles de inicio por rol.
type DashboardUseCase struct {
	companies repository.CompanyRepository
}

func NewDashboardUseCase(companies repository.CompanyRepository) *DashboardUseCase {
	return &DashboardUseCase{companies: companies}
}

// User primero el id de la empresa del usuario y después sus datos; cada paso tiene su mensaje.
func (uc *DashboardUseCase) User(ctx context.Context) (*UserDashboard, error) {
	d := &UserDashboard{}
	id, err := uc.companies.UserCompanyID(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("id de empresa del usuario")
		d.Message = MsgCompanyIDFailed
		return d, err
	}
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("company_id", id).Msg("datos de empresa")
		d.Message = MsgCompanyDetailsFailed
		return d, err
	}
	d.Company = company
	return d, nil
}

// Admin número de empresas registradas.
func (uc *DashboardUseCase) Admin(ctx context.Context) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	list, err := uc.companies.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("listar empresas")
		d.Message = MsgCompaniesLoadFailed
		return d, err
	}
	d.Companies = len(list)
	return d, nil
}

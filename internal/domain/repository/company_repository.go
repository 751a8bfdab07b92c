package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// CompanyRepository define el puerto hacia el recurso de empresas del API (DIP).
// La implementación vive en infrastructure/apiclient.
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	// UserCompanyID id de la empresa del usuario de la sesión actual.
	UserCompanyID(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	Update(ctx context.Context, id int64, company entity.Company) (*entity.Company, error)
	// Delete falla mientras la empresa tenga empleados o inventario.
	Delete(ctx context.Context, id int64) error
}

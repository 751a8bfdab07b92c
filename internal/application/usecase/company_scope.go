package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// ResolveCompanyID usa el id de la ruta; si falta (0) consulta la empresa del usuario.
func ResolveCompanyID(ctx context.Context, companies repository.CompanyRepository, id int64) (int64, error) {
	if id > 0 {
		return id, nil
	}
	own, err := companies.UserCompanyID(ctx)
	if err != nil {
		return 0, fmt.Errorf("empresa del usuario: %w", err)
	}
	return own, nil
}

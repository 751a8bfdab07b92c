package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Mensajes de la vista de empresas.
const (
	MsgCompaniesLoadFailed  = "No se pudo cargar la lista de empresas. Intente de nuevo."
	MsgCompanyUpdateFailed  = "No se pudo actualizar la empresa. Intente de nuevo."
	MsgCompanyDeleteBlocked = "No se pudo eliminar la empresa. El inventario o la lista de empleados de esta empresa no están vacíos."
	MsgCompanyUpdated       = "Empresa actualizada."
	MsgCompanyDeleted       = "Empresa eliminada."
)

// CompanyList estado de la vista de empresas (sólo ADMIN).
type CompanyList struct {
	Companies []entity.Company
	Message   string
	Notice    string
}

// Find busca por id.
func (l *CompanyList) Find(id int64) (int, bool) {
	for i, c := range l.Companies {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

// CompanyUseCase casos de uso de la vista de empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto del API.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Load trae todas las empresas. Ante error la lista queda vacía con mensaje.
func (uc *CompanyUseCase) Load(ctx context.Context) (*CompanyList, error) {
	l := &CompanyList{}
	list, err := uc.repo.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("listar empresas")
		l.Message = MsgCompaniesLoadFailed
		return l, err
	}
	l.Companies = list
	return l, nil
}

// Update aplica el patch sobre la empresa de la lista y reemplaza la entrada con la respuesta del API.
func (uc *CompanyUseCase) Update(ctx context.Context, l *CompanyList, id int64, patch entity.CompanyPatch) error {
	idx, ok := l.Find(id)
	if !ok {
		l.Message = MsgCompanyUpdateFailed
		return fmt.Errorf("empresa %d: %w", id, domain.ErrNotFound)
	}
	updated, err := uc.repo.Update(ctx, id, patch.Apply(l.Companies[idx]))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("company_id", id).Msg("actualizar empresa")
		l.Message = MsgCompanyUpdateFailed
		return err
	}
	l.Companies[idx] = *updated
	l.Notice = MsgCompanyUpdated
	return nil
}

// Delete quita la empresa de la lista sólo si el API la eliminó.
// El API rechaza el borrado mientras existan empleados o inventario.
func (uc *CompanyUseCase) Delete(ctx context.Context, l *CompanyList, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("company_id", id).Msg("eliminar empresa")
		if !errors.Is(err, domain.ErrUnauthorized) {
			l.Message = MsgCompanyDeleteBlocked
		}
		return err
	}
	kept := l.Companies[:0]
	for _, c := range l.Companies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	l.Companies = kept
	l.Notice = MsgCompanyDeleted
	return nil
}

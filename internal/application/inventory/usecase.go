package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Mensajes de la vista de inventario.
const (
	MsgLoadFailed       = "No se pudo cargar la información de la empresa o del inventario. Intente de nuevo."
	MsgSearchFailed     = "No se pudo buscar en el inventario. Intente de nuevo."
	MsgOutOfStockFailed = "No se pudo consultar el inventario agotado. Intente de nuevo."
	MsgReorderFailed    = "No se pudo consultar el inventario por reordenar. Intente de nuevo."
	MsgAddFailed        = "No se pudo agregar el ítem. Intente de nuevo."
	MsgUpdateFailed     = "No se pudo actualizar el ítem. Intente de nuevo."
	MsgDeleteFailed     = "No se pudo eliminar el ítem. Intente de nuevo."
	MsgCompanyMissing   = "Falta el id de la empresa. No se puede agregar inventario."
)

// List estado de la vista de inventario de una empresa.
// Items es la lista completa; Visible lo que se muestra con los filtros actuales.
type List struct {
	CompanyID int64
	Company   *entity.Company
	Items     []entity.Inventory
	Visible   []entity.Inventory
	Filters   Filters
	Message   string
	Notice    string
}

// Mode filtro efectivo.
func (l *List) Mode() FilterMode { return l.Filters.Mode() }

// VisibleStockValue valor total de lo que se muestra.
func (l *List) VisibleStockValue() decimal.Decimal {
	return entity.TotalStockValue(l.Visible)
}

// ResetView muestra la lista completa.
func (l *List) ResetView() {
	l.Visible = append([]entity.Inventory(nil), l.Items...)
}

func (l *List) find(id int64) (int, bool) {
	for i, it := range l.Items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}

// UseCase casos de uso de la vista de inventario.
type UseCase struct {
	companies        repository.CompanyRepository
	inventories      repository.InventoryRepository
	rolloverParallel int
}

// NewUseCase rolloverParallel limita las actualizaciones simultáneas del cierre de periodo (<=0 sin límite).
func NewUseCase(companies repository.CompanyRepository, inventories repository.InventoryRepository, rolloverParallel int) *UseCase {
	return &UseCase{companies: companies, inventories: inventories, rolloverParallel: rolloverParallel}
}

// Load resuelve la empresa, trae en paralelo sus datos y su inventario y aplica los filtros.
func (uc *UseCase) Load(ctx context.Context, companyID int64, f Filters) (*List, error) {
	l := &List{Filters: f}
	id, err := usecase.ResolveCompanyID(ctx, uc.companies, companyID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("resolver empresa")
		l.Message = MsgLoadFailed
		return l, err
	}
	l.CompanyID = id

	var (
		company *entity.Company
		items   []entity.Inventory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		company, err = uc.companies.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = uc.inventories.ListByCompany(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("company_id", id).Msg("cargar inventario")
		l.Message = MsgLoadFailed
		return l, err
	}
	l.Company = company
	l.Items = items
	return l, uc.ApplyFilters(ctx, l, f)
}

// ApplyFilters resuelve Visible según el modo. Los filtros se calculan en el servidor;
// el modo ModeAll no hace ninguna llamada.
func (uc *UseCase) ApplyFilters(ctx context.Context, l *List, f Filters) error {
	l.Filters = f
	var (
		items []entity.Inventory
		err   error
		msg   string
	)
	switch f.Mode() {
	case ModeOutOfStock:
		items, err = uc.inventories.OutOfStock(ctx, l.CompanyID)
		msg = MsgOutOfStockFailed
	case ModeReorder:
		items, err = uc.inventories.ReorderPoint(ctx, l.CompanyID)
		msg = MsgReorderFailed
	case ModeSearch:
		items, err = uc.inventories.Search(ctx, l.CompanyID, f.Term())
		msg = MsgSearchFailed
	default:
		l.ResetView()
		return nil
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("mode", f.Mode().String()).Msg("filtrar inventario")
		l.Message = msg
		l.ResetView()
		return err
	}
	l.Visible = items
	return nil
}

// Add crea el ítem en la empresa cargada y lo agrega al final. La vista vuelve a la lista completa.
func (uc *UseCase) Add(ctx context.Context, l *List, item entity.Inventory) error {
	if l.Company == nil || l.Company.ID == 0 {
		l.Message = MsgCompanyMissing
		return domain.ErrMissingCompany
	}
	created, err := uc.inventories.Create(ctx, l.Company.ID, item)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("agregar inventario")
		l.Message = MsgAddFailed
		return err
	}
	l.Items = append(l.Items, *created)
	l.ResetView()
	return nil
}

// Update fusiona el patch con el ítem actual, lo envía y reemplaza la entrada con la respuesta.
func (uc *UseCase) Update(ctx context.Context, l *List, id int64, patch entity.InventoryPatch) error {
	idx, ok := l.find(id)
	if !ok {
		l.Message = MsgUpdateFailed
		return fmt.Errorf("inventario %d: %w", id, domain.ErrNotFound)
	}
	updated, err := uc.inventories.Update(ctx, id, patch.Apply(l.Items[idx]))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("inventory_id", id).Msg("actualizar inventario")
		l.Message = MsgUpdateFailed
		return err
	}
	if i, ok := l.find(updated.ID); ok {
		l.Items[i] = *updated
	}
	l.ResetView()
	return nil
}

// Delete quita el ítem tras confirmarse el borrado.
func (uc *UseCase) Delete(ctx context.Context, l *List, id int64) error {
	if err := uc.inventories.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("inventory_id", id).Msg("eliminar inventario")
		l.Message = MsgDeleteFailed
		return err
	}
	kept := l.Items[:0]
	for _, it := range l.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	l.Items = kept
	l.ResetView()
	return nil
}

package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Mensajes del cierre de periodo.
const (
	MsgRolloverDone   = "Inventario actualizado para el nuevo periodo."
	MsgRolloverFailed = "No se pudo actualizar el inventario para el nuevo periodo. Intente de nuevo."
)

// RolloverError fallo agregado del cierre de periodo. Las actualizaciones exitosas no se revierten.
type RolloverError struct {
	Total  int
	Failed int
	Err    error
}

func (e *RolloverError) Error() string {
	return fmt.Sprintf("cierre de periodo: %d de %d actualizaciones fallaron: %v", e.Failed, e.Total, e.Err)
}

func (e *RolloverError) Unwrap() error { return e.Err }

// Rollover pasa cada ítem al siguiente periodo (entradas y salidas en cero, apertura = cierre)
// y envía una actualización por ítem. Espera a que terminen todas antes de informar;
// cualquier fallo marca la operación completa como fallida y no se reintenta.
// La lista final son los ítems modificados localmente, no las respuestas del API; los
// que se guardaron se recalculan con las reglas del API (cierre, valor, reorden).
func (uc *UseCase) Rollover(ctx context.Context, l *List) error {
	for i := range l.Items {
		l.Items[i] = l.Items[i].RolledOver()
	}

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	if uc.rolloverParallel > 0 {
		g.SetLimit(uc.rolloverParallel)
	}
	for idx, item := range l.Items {
		idx, item := idx, item
		g.Go(func() error {
			if _, err := uc.inventories.Update(ctx, item.ID, item); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("ítem %d: %w", item.ID, err))
				mu.Unlock()
				// los fallos se acumulan sin cancelar al resto
				return nil
			}
			// cada goroutine escribe sólo su posición
			l.Items[idx] = item.Recalculate()
			return nil
		})
	}
	_ = g.Wait()
	l.ResetView()

	if len(errs) > 0 {
		rerr := &RolloverError{Total: len(l.Items), Failed: len(errs), Err: errors.Join(errs...)}
		zerolog.Ctx(ctx).Error().Err(rerr).Int64("company_id", l.CompanyID).Msg("cierre de periodo")
		l.Message = MsgRolloverFailed
		return rerr
	}
	l.Notice = MsgRolloverDone
	return nil
}

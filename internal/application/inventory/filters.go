package inventory

import "strings"

// FilterMode filtro efectivo de la vista.
type FilterMode int

const (
	ModeAll FilterMode = iota
	ModeOutOfStock
	ModeReorder
	ModeSearch
)

func (m FilterMode) String() string {
	switch m {
	case ModeOutOfStock:
		return "out-of-stock"
	case ModeReorder:
		return "reorder"
	case ModeSearch:
		return "search"
	default:
		return "all"
	}
}

// Filters estado de los controles de la vista de inventario.
type Filters struct {
	OutOfStock bool
	Reorder    bool
	Search     string
}

// Term término de búsqueda sin espacios alrededor.
func (f Filters) Term() string {
	return strings.TrimSpace(f.Search)
}

// Mode los dos interruptores son excluyentes: ambos activos equivale a ninguno
// y la vista vuelve a la lista completa. La búsqueda sólo aplica sin interruptores.
func (f Filters) Mode() FilterMode {
	switch {
	case f.OutOfStock && f.Reorder:
		return ModeAll
	case f.OutOfStock:
		return ModeOutOfStock
	case f.Reorder:
		return ModeReorder
	case f.Term() != "":
		return ModeSearch
	default:
		return ModeAll
	}
}

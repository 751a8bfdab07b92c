package inventory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

type fakeCompanies struct {
	company entity.Company
	ownID   int64
}

func (f *fakeCompanies) List(context.Context) ([]entity.Company, error) {
	return []entity.Company{f.company}, nil
}

func (f *fakeCompanies) UserCompanyID(context.Context) (int64, error) { return f.ownID, nil }

func (f *fakeCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if id != f.company.ID {
		return nil, domain.ErrNotFound
	}
	c := f.company
	return &c, nil
}

func (f *fakeCompanies) Update(_ context.Context, _ int64, c entity.Company) (*entity.Company, error) {
	return &c, nil
}

func (f *fakeCompanies) Delete(context.Context, int64) error { return nil }

// fakeInventories registra cada llamada y permite fallar actualizaciones por id.
type fakeInventories struct {
	mu        sync.Mutex
	items     []entity.Inventory
	filtered  []entity.Inventory
	failIDs   map[int64]error
	calls     []string
	updates   map[int64]entity.Inventory
	lastTerm  string
	nextID    int64
	createErr error
}

func (f *fakeInventories) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeInventories) called(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeInventories) ListByCompany(context.Context, int64) ([]entity.Inventory, error) {
	f.record("ListByCompany")
	return append([]entity.Inventory(nil), f.items...), nil
}

func (f *fakeInventories) Create(_ context.Context, _ int64, item entity.Inventory) (*entity.Inventory, error) {
	f.record("Create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	item.ID = 100 + f.nextID
	item.ReorderPoint = entity.DefaultReorderPoint
	item.IsReorder = entity.ReorderYes
	return &item, nil
}

func (f *fakeInventories) Update(_ context.Context, id int64, item entity.Inventory) (*entity.Inventory, error) {
	f.record("Update")
	if err := f.failIDs[id]; err != nil {
		return nil, err
	}
	f.mu.Lock()
	if f.updates == nil {
		f.updates = map[int64]entity.Inventory{}
	}
	f.updates[id] = item
	f.mu.Unlock()
	out := item.Recalculate()
	return &out, nil
}

func (f *fakeInventories) Delete(context.Context, int64) error {
	f.record("Delete")
	return nil
}

func (f *fakeInventories) Search(_ context.Context, _ int64, term string) ([]entity.Inventory, error) {
	f.record("Search")
	f.lastTerm = term
	return f.filtered, nil
}

func (f *fakeInventories) OutOfStock(context.Context, int64) ([]entity.Inventory, error) {
	f.record("OutOfStock")
	return f.filtered, nil
}

func (f *fakeInventories) ReorderPoint(context.Context, int64) ([]entity.Inventory, error) {
	f.record("ReorderPoint")
	return f.filtered, nil
}

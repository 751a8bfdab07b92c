package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// fakeCompanies implementación en memoria de repository.CompanyRepository.
type fakeCompanies struct {
	mu        sync.Mutex
	items     map[int64]entity.Company
	ownID     int64
	ownErr    error
	deleteErr error
	calls     []string
}

func newFakeCompanies(items ...entity.Company) *fakeCompanies {
	f := &fakeCompanies{items: map[int64]entity.Company{}}
	for _, c := range items {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeCompanies) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeCompanies) List(context.Context) ([]entity.Company, error) {
	f.record("List")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Company, 0, len(f.items))
	for id := int64(1); id <= int64(len(f.items))+10; id++ {
		if c, ok := f.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanies) UserCompanyID(context.Context) (int64, error) {
	f.record("UserCompanyID")
	return f.ownID, f.ownErr
}

func (f *fakeCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	f.record("GetByID")
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCompanies) Update(_ context.Context, id int64, c entity.Company) (*entity.Company, error) {
	f.record("Update")
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = id
	f.items[id] = c
	return &c, nil
}

func (f *fakeCompanies) Delete(_ context.Context, id int64) error {
	f.record("Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

// fakeEmployees implementación en memoria de repository.EmployeeRepository.
type fakeEmployees struct {
	mu     sync.Mutex
	byComp map[int64][]entity.Employee
	nextID int64
	err    error
}

func (f *fakeEmployees) ListByCompany(_ context.Context, companyID int64) ([]entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Employee(nil), f.byComp[companyID]...), nil
}

func (f *fakeEmployees) Create(_ context.Context, companyID int64, e entity.Employee) (*entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	if f.byComp == nil {
		f.byComp = map[int64][]entity.Employee{}
	}
	f.byComp[companyID] = append(f.byComp[companyID], e)
	return &e, nil
}

func (f *fakeEmployees) Update(_ context.Context, id int64, e entity.Employee) (*entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	e.ID = id
	return &e, nil
}

func (f *fakeEmployees) Delete(context.Context, int64) error {
	return f.err
}

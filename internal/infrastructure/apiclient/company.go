package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// CompanyClient recurso /companies.
type CompanyClient struct {
	c *Client
}

var _ repository.CompanyRepository = (*CompanyClient)(nil)

func NewCompanyClient(c *Client) *CompanyClient {
	return &CompanyClient{c: c}
}

type userJSON struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type companyJSON struct {
	ID          int64     `json:"id,omitempty"`
	CompanyName string    `json:"companyName"`
	Capacity    string    `json:"capacity"`
	Location    string    `json:"location"`
	User        *userJSON `json:"user,omitempty"`
}

func (j companyJSON) toEntity() entity.Company {
	c := entity.Company{
		ID:       j.ID,
		Name:     j.CompanyName,
		Capacity: j.Capacity,
		Location: j.Location,
	}
	if j.User != nil {
		c.Owner = &entity.User{ID: j.User.ID, Username: j.User.Username, Role: j.User.Role}
	}
	return c
}

func companyFromEntity(c entity.Company) companyJSON {
	return companyJSON{ID: c.ID, CompanyName: c.Name, Capacity: c.Capacity, Location: c.Location}
}

func (r *CompanyClient) List(ctx context.Context) ([]entity.Company, error) {
	var out []companyJSON
	if err := r.c.do(ctx, http.MethodGet, "/companies/all", nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Company, 0, len(out))
	for _, j := range out {
		list = append(list, j.toEntity())
	}
	return list, nil
}

func (r *CompanyClient) UserCompanyID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.c.do(ctx, http.MethodGet, "/companies/user-company-id", nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CompanyClient) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	var out companyJSON
	if err := r.c.do(ctx, http.MethodGet, idPath("/companies", id), nil, &out); err != nil {
		return nil, err
	}
	c := out.toEntity()
	return &c, nil
}

func (r *CompanyClient) Update(ctx context.Context, id int64, company entity.Company) (*entity.Company, error) {
	var out companyJSON
	if err := r.c.do(ctx, http.MethodPut, idPath("/companies", id), companyFromEntity(company), &out); err != nil {
		return nil, err
	}
	c := out.toEntity()
	return &c, nil
}

func (r *CompanyClient) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, idPath("/companies", id), nil, nil)
}

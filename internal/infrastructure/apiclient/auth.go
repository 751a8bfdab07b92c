package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// AuthClient registro y login. Ambas peticiones llevan la marca No-Auth.
type AuthClient struct {
	c *Client
}

var _ repository.AuthRepository = (*AuthClient)(nil)

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type registrationJSON struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
	Capacity    string `json:"capacity"`
	Location    string `json:"location"`
}

type credentialsJSON struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (a *AuthClient) Register(ctx context.Context, reg entity.Registration) error {
	payload := registrationJSON{
		Username:    reg.Username,
		Password:    reg.Password,
		CompanyName: reg.CompanyName,
		Capacity:    reg.Capacity,
		Location:    reg.Location,
	}
	return a.c.do(ctx, http.MethodPost, "/register", payload, nil, withoutAuth())
}

func (a *AuthClient) Login(ctx context.Context, cred entity.Credentials) (string, error) {
	var out loginResponse
	payload := credentialsJSON{Username: cred.Username, Password: cred.Password}
	if err := a.c.do(ctx, http.MethodPost, "/login", payload, &out, withoutAuth()); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: login sin token", domain.ErrUpstream)
	}
	return out.Token, nil
}

package dto

import (
	"strings"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// RegisterRequest formulario de registro: usuario y su empresa.
type RegisterRequest struct {
	CompanyName string `form:"companyName" label:"empresa" validate:"required,max=200"`
	Capacity    string `form:"capacity" label:"capacidad" validate:"required,max=50"`
	Location    string `form:"location" label:"ubicación" validate:"required,max=200"`
	Username    string `form:"username" label:"usuario" validate:"required,min=4,max=100"`
	Password    string `form:"password" label:"contraseña" validate:"required,min=4,max=200"`
}

// ToEntity normaliza espacios; la contraseña se envía tal cual.
func (r RegisterRequest) ToEntity() entity.Registration {
	return entity.Registration{
		Username:    strings.TrimSpace(r.Username),
		Password:    r.Password,
		CompanyName: strings.TrimSpace(r.CompanyName),
		Capacity:    strings.TrimSpace(r.Capacity),
		Location:    strings.TrimSpace(r.Location),
	}
}

// LoginRequest formulario de inicio de sesión.
type LoginRequest struct {
	Username string `form:"username" label:"usuario" validate:"required"`
	Password string `form:"password" label:"contraseña" validate:"required"`
}

func (r LoginRequest) ToEntity() entity.Credentials {
	return entity.Credentials{Username: strings.TrimSpace(r.Username), Password: r.Password}
}

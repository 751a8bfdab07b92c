package entity

// Roles emitidos por el API en el claim role del token.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User dueño de una empresa. El API nunca devuelve la contraseña.
type User struct {
	ID       int64
	Username string
	Role     string
}

// Registration datos del alta de usuario con su empresa.
type Registration struct {
	Username    string
	Password    string
	CompanyName string
	Capacity    string
	Location    string
}

// Credentials usuario y contraseña para iniciar sesión.
type Credentials struct {
	Username string
	Password string
}

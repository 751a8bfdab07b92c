package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Nombres de las páginas (templates/<nombre>.html).
const (
	PageLanding        = "landing"
	PageRegister       = "register"
	PageLogin          = "login"
	PageAdminDashboard = "admin_dashboard"
	PageUserDashboard  = "user_dashboard"
	PageCompanyList    = "company_list"
	PageEmployeeList   = "employee_list"
	PageInventoryList  = "inventory_list"
	PageForbidden      = "forbidden"
)

var pageNames = []string{
	PageLanding, PageRegister, PageLogin, PageAdminDashboard, PageUserDashboard,
	PageCompanyList, PageEmployeeList, PageInventoryList, PageForbidden,
}

// Views implementa fiber.Views con html/template: cada página se parsea junto al layout.
type Views struct {
	pages map[string]*template.Template
}

var _ fiber.Views = (*Views)(nil)

// NewViews parsea todas las páginas embebidas.
func NewViews() (*Views, error) {
	v := &Views{}
	if err := v.Load(); err != nil {
		return nil, err
	}
	return v, nil
}

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

// Load parsea layout.html + cada página.
func (v *Views) Load() error {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return fmt.Errorf("views: parsear %s: %w", name, err)
		}
		pages[name] = t
	}
	v.pages = pages
	return nil
}

// Render ejecuta el layout con la página indicada. El argumento de layout de fiber se ignora.
func (v *Views) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("views: página desconocida %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Page datos comunes a todas las vistas.
type Page struct {
	Title    string
	LoggedIn bool
	Role     string
	Message  string
	Notice   string
	Errors   []string
	Data     any
}

// IsAdmin ayuda a las plantillas a mostrar enlaces de administración.
func (p Page) IsAdmin() bool { return p.Role == entity.RoleAdmin }

// render arma Page con el estado de la sesión y delega en c.Render.
func render(c *fiber.Ctx, status int, name string, p Page) error {
	if s := GetSession(c); s != nil {
		p.LoggedIn = s.IsLoggedIn()
		p.Role = s.UserRole()
	}
	c.Status(status)
	return c.Render(name, p)
}

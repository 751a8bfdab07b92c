package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *usecase.DashboardUseCase
	CompanyUC   *usecase.CompanyUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	InventoryUC *inventory.UseCase
	ReportUC    *inventory.ReportUseCase
	// LoginLimiter limita POST /login y POST /register; nil = sin límite.
	LoginLimiter *limiter.Limiter
}

// Router registra las páginas del cliente web. Cada acción hereda el guard de su página.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	limited := func(c *fiber.Ctx) error { return c.Next() }
	if deps.LoginLimiter != nil {
		limited = RateLimit(deps.LoginLimiter)
	}

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Get("/", authHandler.Landing)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", limited, authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", limited, authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	loggedIn := Guard(Authenticated())
	admin := Guard(Authenticated(), HasRole(entity.RoleAdmin))
	user := Guard(Authenticated(), HasRole(entity.RoleUser))

	app.Get("/forbidden", loggedIn, authHandler.Forbidden)

	// Paneles por rol
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/admin/dashboard", admin, dashboardHandler.Admin)
	app.Get("/user/dashboard", user, dashboardHandler.User)

	// Empresas (ADMIN)
	companies := app.Group("/company-list", admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/:id/update", companyHandler.Update)
	companies.Post("/:id/delete", companyHandler.Delete)

	// Empleados (autenticado)
	employees := app.Group("/employee-list", loggedIn)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:companyId", employeeHandler.List)
	employees.Post("/:companyId/employees", employeeHandler.Add)
	employees.Post("/:companyId/employees/:id/update", employeeHandler.Update)
	employees.Post("/:companyId/employees/:id/delete", employeeHandler.Delete)

	// Inventario (autenticado)
	inventories := app.Group("/inventory-list", loggedIn)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:companyId", inventoryHandler.List)
	inventories.Get("/:companyId/report.pdf", inventoryHandler.ReportPDF)
	inventories.Get("/:companyId/export.xlsx", inventoryHandler.ExportXLSX)
	inventories.Post("/:companyId/items", inventoryHandler.Add)
	inventories.Post("/:companyId/items/:id/update", inventoryHandler.Update)
	inventories.Post("/:companyId/items/:id/delete", inventoryHandler.Delete)
	inventories.Post("/:companyId/refresh", inventoryHandler.Refresh)

	// Rutas desconocidas vuelven al inicio
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
		}
		return redirect(c, auth.PathLanding)
	})
}

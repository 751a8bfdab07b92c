package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ulule/limiter/v3"
	smemory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/Inventario-web/internal/infrastructure/pdf"
	infraredis "github.com/jhoicas/Inventario-web/internal/infrastructure/redis"
	infraxlsx "github.com/jhoicas/Inventario-web/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Inventario-web/internal/interfaces/http"
	"github.com/jhoicas/Inventario-web/internal/session"
	"github.com/jhoicas/Inventario-web/pkg/config"
	"github.com/jhoicas/Inventario-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente web")

	ctx := context.Background()

	// Sesiones y rate limit: Redis si está configurado, memoria en otro caso.
	rate, err := limiter.NewRateFromFormatted(cfg.Security.LoginRateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.Security.LoginRateLimit).Msg("LOGIN_RATE_LIMIT inválido")
	}
	var (
		store      session.Store
		limitStore limiter.Store
	)
	if cfg.Redis.Enabled() {
		rdb := infraredis.NewClient(cfg.Redis)
		redisStore := infraredis.NewSessionStore(rdb)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		store = redisStore
		limitStore, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "limiter:login"})
		if err != nil {
			log.Fatal().Err(err).Msg("store de rate limit en Redis")
		}
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: sesiones en memoria")
		store = session.NewMemoryStore()
		limitStore = smemory.NewStore()
	}

	sessions := session.NewManager(store, session.Options{
		TTL:    cfg.Session.TTL(),
		Strict: cfg.Session.StrictTokens,
	}, log.Zerolog())

	// Cliente del API remoto: el token sale de la sesión de cada petición.
	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout(), session.TokenFromContext)
	companyRepo := apiclient.NewCompanyClient(client)
	employeeRepo := apiclient.NewEmployeeClient(client)
	inventoryRepo := apiclient.NewInventoryClient(client)

	authUC := auth.NewAuthUseCase(apiclient.NewAuthClient(client))
	dashboardUC := usecase.NewDashboardUseCase(companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(companyRepo, employeeRepo)
	inventoryUC := inventory.NewUseCase(companyRepo, inventoryRepo, cfg.Inventory.RolloverConcurrency)
	reportUC := inventory.NewReportUseCase(
		companyRepo, inventoryRepo, infrapdf.NewMarotoPDFGenerator(), infraxlsx.NewExcelizeExporter(),
	)

	views, err := httpRouter.NewViews()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        views,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.SessionMiddleware(sessions, httpRouter.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
		TTL:    cfg.Session.TTL(),
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		CompanyUC:    companyUC,
		EmployeeUC:   employeeUC,
		InventoryUC:  inventoryUC,
		ReportUC:     reportUC,
		LoginLimiter: limiter.New(limitStore, rate),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("cliente web detenido")
}

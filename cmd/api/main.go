package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/jhoicas/userdesk-api/internal/application/auth"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
	"github.com/jhoicas/userdesk-api/internal/infrastructure/localstore"
	httpRouter "github.com/jhoicas/userdesk-api/internal/interfaces/http"
	"github.com/jhoicas/userdesk-api/pkg/config"
	"github.com/jhoicas/userdesk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	userRepo := localstore.NewUserRepository(store)
	activityRepo := localstore.NewActivityRepository(store)
	statsRepo := localstore.NewStatsRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	userStore, err := usecase.NewUserStore(userRepo, activityRepo, statsRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colección de usuarios")
	}
	dashboardUC := usecase.NewDashboardUseCase(userStore, activityRepo)

	// La restauración corre completa antes de escuchar: el estado transitorio
	// del gate solo es observable si algo consulta antes de este punto.
	sessions := appauth.NewSessionManager(sessionRepo, activityRepo, log)
	sessions.Restore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Userdesk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:    sessions,
		UserStore:   userStore,
		DashboardUC: dashboardUC,
		JWT:         cfg.JWT,
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

	log.Info().Msg("aplicación detenida")
}

package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"skillnuron/internal/config"
	"skillnuron/internal/database"
	"skillnuron/internal/database/postgres"
	"skillnuron/internal/database/seeder"
	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/delivery/http/routes"
	"skillnuron/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	DB    database.DB
}

func New(cfg config.Config, db database.DB, jobsCache *cache.Redis, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(cfg, db, jobsCache, logger).Register(f)

	return &App{Fiber: f, DB: db}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.JobSeeder{},
	}}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed database: %w", err)
	}

	jobsCache := cache.NewRedis(cfg.Redis, logger)

	app := New(cfg, db, jobsCache, logger)

	cleanup := func() error {
		_ = jobsCache.Close()
		return db.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

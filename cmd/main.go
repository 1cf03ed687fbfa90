package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/avayezaryab/backend/config"
	"github.com/avayezaryab/backend/db"
	"github.com/avayezaryab/backend/internal/catalog"
	"github.com/avayezaryab/backend/internal/identity/handler"
	repo "github.com/avayezaryab/backend/internal/identity/repository/postgres"
	"github.com/avayezaryab/backend/internal/identity/service"
	"github.com/avayezaryab/backend/internal/logging"
	"github.com/avayezaryab/backend/internal/mailer"
	"github.com/avayezaryab/backend/internal/media"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Fatalw("migrations failed", "error", err)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatalw("database connection failed", "error", err)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	codeRepo := repo.NewCodeRepository(pool)
	ledger := service.NewCodeLedger(codeRepo, cfg.Codes.Length, cfg.Codes.TTL())
	mail := mailer.New(cfg.SMTP, logger)
	identity := service.NewIdentityService(userRepo, ledger, service.RandomTokenIssuer{}, mail, cfg.Admin, logger)
	authHandler := handler.NewAuthHandler(identity)

	store := media.NewDiskStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	mediaHandler := media.NewHandler(media.NewRepository(pool), store, logger)
	catalogHandler := catalog.NewHandler(catalog.NewRepository(pool), logger)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Upload.MaxMB * 1024 * 1024,
	})

	handler.RegisterRoutes(app, authHandler)
	admin := app.Group("/api/admin", handler.RequireAdminToken(cfg.Admin.Token))
	media.RegisterRoutes(app, admin, mediaHandler)
	catalog.RegisterRoutes(app, admin, catalogHandler)
	app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	logger.Infow("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

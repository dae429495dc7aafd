package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/wanderlust/internal/config"
	"github.com/example/wanderlust/internal/database"
	"github.com/example/wanderlust/internal/handlers"
	"github.com/example/wanderlust/internal/logger"
	"github.com/example/wanderlust/internal/routes"
	"github.com/example/wanderlust/internal/services"
	"github.com/example/wanderlust/internal/storage"
	"github.com/example/wanderlust/internal/store"
)

const sessionKeyPrefix = "wl_session:"

func main() {
	cfg := config.Load()
	logger.Setup(os.Stdout, "wanderlust", cfg.LogLevel)

	ctx := context.Background()

	persistent, err := openPersistentStorage(ctx, cfg)
	if err != nil {
		slog.Error("storage_init_failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	session, err := openSessionStorage(ctx, cfg)
	if err != nil {
		slog.Error("session_init_failed", "driver", cfg.SessionDriver, "error", err)
		os.Exit(1)
	}

	site := store.New(ctx, persistent, session)
	itineraries := store.NewItineraryStore(ctx, persistent, nil)

	generator := services.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !generator.Configured() {
		slog.Warn("gemini_api_key_missing", "hint", "set GEMINI_API_KEY to enable the AI concierge and planner")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Wanderlust Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.Register(app, cfg, routes.Dependencies{
		Site:        site,
		Itineraries: itineraries,
		Generator:   generator,
	})

	slog.Info("server_starting", "port", cfg.AppPort, "storage", cfg.StorageDriver, "session", cfg.SessionDriver)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		slog.Error("server_listen_failed", "error", err)
		os.Exit(1)
	}
}

func openPersistentStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return storage.NewGorm(db, cfg.StorageMaxValueBytes), nil
	case config.DriverMongo:
		db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return storage.NewMongo(db.Collection(storage.MongoCollection), cfg.StorageMaxValueBytes), nil
	case config.DriverMemory:
		slog.Warn("storage_in_memory", "hint", "content changes are lost on restart")
		return storage.NewMemory(cfg.StorageMaxValueBytes), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openSessionStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.SessionDriver {
	case config.DriverRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return storage.NewRedis(client, sessionKeyPrefix, cfg.SessionTTL), nil
	case config.DriverMemory:
		return storage.NewMemory(0), nil
	default:
		return nil, fmt.Errorf("unsupported session driver %q", cfg.SessionDriver)
	}
}

// Package bootstrap assembles the application: configuration, database,
// migrations, seed data, services and the HTTP engine.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/migrations"
	"github.com/emrek/registra/internal/app/repositories"
	"github.com/emrek/registra/internal/app/routes"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/config"
	"github.com/emrek/registra/internal/db"
	"github.com/emrek/registra/internal/middleware"
	"github.com/emrek/registra/internal/pkg/auth"
	"github.com/emrek/registra/internal/pkg/helpers"
	"github.com/emrek/registra/internal/pkg/logger"
	"github.com/emrek/registra/internal/seed"
)

// Application holds the assembled components.
type Application struct {
	Config   *config.Config
	Database *db.PostgresDB
	Engine   *gin.Engine
}

// NewApplication wires the whole application together.
func NewApplication(cfg *config.Config) (*Application, error) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrations.Run(ctx, database.Pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, jwtService)

	if err := seed.Run(ctx, cfg, repos); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())

	routes.Setup(engine, svcs, jwtService)

	return &Application{
		Config:   cfg,
		Database: database,
		Engine:   engine,
	}, nil
}

// Close releases the application's resources.
func (a *Application) Close() {
	a.Database.Close()
}

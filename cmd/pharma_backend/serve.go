package main

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/services"
	"github.com/SscSPs/pharma_backend/internal/handlers"
	"github.com/SscSPs/pharma_backend/internal/middleware"
	"github.com/SscSPs/pharma_backend/internal/platform/config"
	"github.com/SscSPs/pharma_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/pharma_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL is required")
			}

			if !skipMigrations {
				logger.Info("Running database migrations...")
				if _, err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
					return err
				}
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, cfg.EnableDBCheck)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(dbPool)

			repos := pgsql.NewRepositoryProvider(dbPool)
			container := services.NewServiceContainer(cfg, repos)

			r, err := newRouter(cfg, logger)
			if err != nil {
				return err
			}

			rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
			if err != nil {
				return err
			}
			handlers.RegisterRoutes(r, cfg, container, rateLimiter)

			logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("auth_enabled", cfg.AuthEnabled))
			if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server failed to run", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
	return cmd
}

func newRouter(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return nil, err
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", handlers.CompanyIDHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

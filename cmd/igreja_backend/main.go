package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/IgrejaViva/igreja_backend/cmd/docs"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/core/services"
	"github.com/IgrejaViva/igreja_backend/internal/handlers"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
	"github.com/IgrejaViva/igreja_backend/internal/platform/config"
	"github.com/IgrejaViva/igreja_backend/internal/repositories/database/pgsql"
	"github.com/IgrejaViva/igreja_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Igreja Backend API
// @version 1.0
// @description Church management backend covering payables, reconciliations and congregation directories.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := buildServices(cfg, repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices constructs the service layer in dependency order.
func buildServices(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	permissionSvc := services.NewPermissionService(repos.UserRepo, repos.CongregationRepo)
	userSvc := services.NewUserService(repos.UserRepo, permissionSvc)
	googleSvc := services.NewGoogleOAuthService(cfg)
	authSvc := services.NewAuthService(cfg, userSvc, repos.UserRepo, googleSvc)

	return &portssvc.ServiceContainer{
		Permission:     permissionSvc,
		User:           userSvc,
		Auth:           authSvc,
		Payable:        services.NewPayableService(repos.PayableRepo, repos.CategoryRepo, permissionSvc),
		Reconciliation: services.NewReconciliationService(repos.ReconciliationRepo, permissionSvc),
		Congregation:   services.NewCongregationService(repos.CongregationRepo, repos.UserRepo, permissionSvc),
		Member:         services.NewMemberService(repos.MemberRepo, permissionSvc),
		Event:          services.NewEventService(repos.EventRepo, permissionSvc),
		Notification:   services.NewNotificationService(repos.NotificationRepo, permissionSvc),
		Category:       services.NewCategoryService(repos.CategoryRepo, permissionSvc),
	}
}

// runMigrations applies pending database migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

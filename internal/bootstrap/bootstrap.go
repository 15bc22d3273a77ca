// Package bootstrap wires configuration, database, and application
// dependencies together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushire/placementhub/internal/app/controllers"
	appMigrations "github.com/campushire/placementhub/internal/app/migrations"
	appRepos "github.com/campushire/placementhub/internal/app/repositories"
	appRoutes "github.com/campushire/placementhub/internal/app/routes"
	appServices "github.com/campushire/placementhub/internal/app/services"
	"github.com/campushire/placementhub/internal/config"
	"github.com/campushire/placementhub/internal/db"
	appMiddleware "github.com/campushire/placementhub/internal/middleware"
	pkgAuth "github.com/campushire/placementhub/internal/pkg/auth"
	"github.com/campushire/placementhub/internal/pkg/logger"
	"github.com/campushire/placementhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	Services   *appServices.Services
	JWTService *pkgAuth.JWTService

	AuthController      *appControllers.AuthController
	AdminController     *appControllers.AdminController
	StudentController   *appControllers.StudentController
	DriveController     *appControllers.DriveController
	QueryController     *appControllers.QueryController
	JourneyController   *appControllers.JourneyController
	CommentController   *appControllers.CommentController
	CompanyController   *appControllers.CompanyController
	PortfolioController *appControllers.PortfolioController
	SkillController     *appControllers.SkillController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth)
	deps.AdminController = appControllers.NewAdminController(deps.Services.Admin)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student)
	deps.DriveController = appControllers.NewDriveController(deps.Services.Drive)
	deps.QueryController = appControllers.NewQueryController(deps.Services.Query)
	deps.JourneyController = appControllers.NewJourneyController(deps.Services.Journey)
	deps.CommentController = appControllers.NewCommentController(deps.Services.Comment)
	deps.CompanyController = appControllers.NewCompanyController(deps.Services.Company)
	deps.PortfolioController = appControllers.NewPortfolioController(deps.Services.Portfolio)
	deps.SkillController = appControllers.NewSkillController(deps.Services.Skill)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes, and
// wraps it with the CORS handler.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) http.Handler {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.StudentController,
		deps.DriveController,
		deps.QueryController,
		deps.JourneyController,
		deps.CommentController,
		deps.CompanyController,
		deps.PortfolioController,
		deps.SkillController,
		deps.AuthMiddleware,
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return corsHandler.Handler(router)
}

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/hrmslite/docs" // Import generated swagger docs
	appControllers "github.com/yigit/hrmslite/internal/app/controllers"
	appMigrations "github.com/yigit/hrmslite/internal/app/migrations"
	appRepos "github.com/yigit/hrmslite/internal/app/repositories"
	appRoutes "github.com/yigit/hrmslite/internal/app/routes"
	appServices "github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/config"
	"github.com/yigit/hrmslite/internal/db"
	appMiddleware "github.com/yigit/hrmslite/internal/middleware"
	"github.com/yigit/hrmslite/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EmployeeService      *appServices.EmployeeService
	AttendanceService    *appServices.AttendanceService
	StatsService         *appServices.StatsService
	SeedService          *appServices.SeedService
	EmployeeController   *appControllers.EmployeeController
	AttendanceController *appControllers.AttendanceController
	StatsController      *appControllers.StatsController
	SeedController       *appControllers.SeedController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository, deps.Repos.AttendanceRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.EmployeeRepository, deps.Repos.AttendanceRepository)
	deps.StatsService = appServices.NewStatsService(deps.Repos.EmployeeRepository, deps.Repos.AttendanceRepository, cfg.Stats.RecentLimit)
	deps.SeedService = appServices.NewSeedService(deps.Repos.EmployeeRepository, deps.Repos.AttendanceRepository)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.SeedController = appControllers.NewSeedController(deps.SeedService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(appMiddleware.RequestID())

	// The dashboard frontend may be served from any origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.AttendanceController,
		deps.StatsController,
		deps.SeedController,
	)

	return router
}

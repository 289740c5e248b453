package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emir/gradportal/internal/app/controllers"
	appMigrations "github.com/emir/gradportal/internal/app/migrations"
	appRepos "github.com/emir/gradportal/internal/app/repositories"
	appRoutes "github.com/emir/gradportal/internal/app/routes"
	appServices "github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/config"
	"github.com/emir/gradportal/internal/db"
	"github.com/emir/gradportal/internal/middleware"
	pkgAuth "github.com/emir/gradportal/internal/pkg/auth"
	"github.com/emir/gradportal/internal/pkg/filestorage"
	"github.com/emir/gradportal/internal/pkg/logger"
	"github.com/emir/gradportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	Services     *appServices.Services
	Controllers  *appControllers.Controllers
	TokenService *pkgAuth.TokenService
	FileStorage  *filestorage.LocalStorage
	Logger       zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default vocabulary.
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
		// Startup continues; registration rejects vocabulary values that
		// never made it into the table.
		lgr.Error().Err(err).Msg("Failed to seed default vocabulary, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The baseURL must match the static file serving path in the server.
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	tokenExpiration, err := time.ParseDuration(cfg.Auth.TokenExpiration)
	if err != nil {
		tokenExpiration = 24 * time.Hour
	}
	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:  cfg.Auth.TokenSecret,
		Expiration: tokenExpiration,
		Issuer:     cfg.Auth.TokenIssuer,
	})

	deps.Services = &appServices.Services{
		Auth: appServices.NewAuthService(
			deps.Repos.StudentRepository,
			deps.Repos.ProfessorRepository,
			deps.TokenService,
			cfg.Auth.EmailDomain,
			lgr,
		),
		Project: appServices.NewProjectService(
			deps.Repos.ProjectRepository,
			deps.Repos.VocabularyRepository,
			deps.FileStorage,
			lgr,
		),
		Comment:    appServices.NewCommentService(deps.Repos.CommentRepository, deps.Repos.StudentRepository),
		Bookmark:   appServices.NewBookmarkService(deps.Repos.BookmarkRepository, deps.Repos.ProjectRepository),
		Vocabulary: appServices.NewVocabularyService(deps.Repos.VocabularyRepository),
	}

	deps.Controllers = appControllers.NewControllers(deps.Services, deps.FileStorage)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}

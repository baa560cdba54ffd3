package bootstrap

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/minilms/internal/app/controllers"
	"github.com/yigit/minilms/internal/app/models"
	appRepos "github.com/yigit/minilms/internal/app/repositories"
	appRoutes "github.com/yigit/minilms/internal/app/routes"
	appServices "github.com/yigit/minilms/internal/app/services"
	"github.com/yigit/minilms/internal/config"
	appMiddleware "github.com/yigit/minilms/internal/middleware"
	"github.com/yigit/minilms/internal/pkg/cache"
	"github.com/yigit/minilms/internal/pkg/logger"
	"github.com/yigit/minilms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	CourseService       appServices.CourseService
	StudentService      appServices.StudentService
	EnrolmentService    appServices.EnrolmentService
	ReportService       appServices.ReportService
	CourseDetailService appServices.CourseDetailService
	CourseDetailCache   *cache.ReadThrough[[]models.CourseDetail]
	Controllers         appRoutes.Controllers
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory repositories and seeds them from the data
// directory. Seed problems are logged and never fail startup.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *seed.Loader) {
	repos := appRepos.NewRepositories()
	loader := seed.NewLoader(cfg.Data.Dir, lgr)

	lgr.Info().Str("dir", cfg.Data.Dir).Msg("Loading seed data...")
	seed.Populate(loader, repos)
	return repos, loader
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, loader *seed.Loader, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	detailStore := cache.NewInMemory[[]models.CourseDetail](
		"course-details", cfg.CourseDetailsTTL(), cache.DefaultCleanupInterval, logger.Component("cache"))
	deps.CourseDetailCache = cache.NewReadThrough[[]models.CourseDetail](detailStore, loader.CourseDetailsLoader(), cfg.CourseDetailsTTL())

	deps.CourseService = appServices.NewCourseService(repos.CourseRepository, logger.Component("course-service"))
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository)
	deps.EnrolmentService = appServices.NewEnrolmentService(
		repos.EnrolmentRepository,
		repos.StudentRepository,
		repos.CourseRepository,
		logger.Component("enrolment-service"),
	)
	deps.ReportService = appServices.NewReportService(repos.CourseRepository, repos.EnrolmentRepository)
	deps.CourseDetailService = appServices.NewCourseDetailService(deps.CourseDetailCache)

	deps.Controllers = appRoutes.Controllers{
		Course:       appControllers.NewCourseController(deps.CourseService),
		Student:      appControllers.NewStudentController(deps.StudentService),
		Enrolment:    appControllers.NewEnrolmentController(deps.EnrolmentService, lgr),
		Report:       appControllers.NewReportController(deps.ReportService),
		CourseDetail: appControllers.NewCourseDetailController(deps.CourseDetailService, lgr),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}

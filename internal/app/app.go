package app

import (
	"context"
	"log"
	"mahad_backend/internal/config"
	"mahad_backend/internal/controller"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"
	"mahad_backend/pkg/configwatcher"
	"mahad_backend/pkg/database"
	"mahad_backend/pkg/logger"
	"mahad_backend/pkg/monitoring"
	"mahad_backend/pkg/security"
	"mahad_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user     *repository.UserRepository
	building *repository.BuildingRepository
	floor    *repository.FloorRepository
	group    *repository.StudyGroupRepository
	resident *repository.ResidentRepository
	staff    *repository.StaffRepository
	target   *repository.TargetRepository
	grade    *repository.GradeRepository
	quiz     *repository.QuizRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	scope       *service.ScopeService
	hierarchy   *service.HierarchyService
	grade       *service.GradeService
	progress    *service.ProgressService
	leaderboard *service.LeaderboardService
	quiz        *service.QuizService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	hierarchy   *controller.HierarchyController
	resident    *controller.ResidentController
	target      *controller.TargetController
	grade       *controller.GradeController
	progress    *controller.ProgressController
	leaderboard *controller.LeaderboardController
	quiz        *controller.QuizController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		building: repository.NewBuildingRepository(db),
		floor:    repository.NewFloorRepository(db),
		group:    repository.NewStudyGroupRepository(db),
		resident: repository.NewResidentRepository(db),
		staff:    repository.NewStaffRepository(db),
		target:   repository.NewTargetRepository(db),
		grade:    repository.NewGradeRepository(db),
		quiz:     repository.NewQuizRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.staff, cfg)
	s.user = service.NewUserService(repos.user)
	s.scope = service.NewScopeService(repos.staff)
	s.hierarchy = service.NewHierarchyService(repos.building, repos.floor, repos.group, repos.resident, repos.staff)
	s.grade = service.NewGradeService(repos.grade, repos.resident, repos.target)
	s.progress = service.NewProgressService(repos.grade, repos.resident, repos.target)
	s.leaderboard = service.NewLeaderboardService(repos.grade, repos.quiz, repos.resident, rdb)
	s.quiz = service.NewQuizService(repos.quiz, repos.resident)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user, s.storage),
		hierarchy:   controller.NewHierarchyController(s.hierarchy, repos.building, repos.floor, repos.group, repos.staff),
		resident:    controller.NewResidentController(s.hierarchy, s.scope, repos.resident, s.storage),
		target:      controller.NewTargetController(repos.target),
		grade:       controller.NewGradeController(s.grade, s.scope),
		progress:    controller.NewProgressController(s.progress, s.scope),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, s.scope),
		quiz:        controller.NewQuizController(s.quiz, repos.resident),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks keeps the global leaderboard cache warm so the
// resident-facing view stays cheap, and watches the config file for
// hot-reloadable settings.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.leaderboard.RefreshGlobalCache(context.Background()); err != nil {
				logger.Log.Error("leaderboard cache refresh error", zap.Error(err))
			}
		}
	}()

	go configwatcher.WatchConfig("configs/config.yaml", a.applyConfig)
}

func (a *App) applyConfig(newCfg *config.Config) {
	a.Config.ApplyReloadable(newCfg)
	logger.Log.Info("Config reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Migrations run automatically outside release mode; in release they
	// require the -migrate flag.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
			log.Fatalf("Failed to migrate database: %v", err)
		}
		logger.Log.Info("Database migration completed")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("mahad-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

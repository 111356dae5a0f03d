package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillpath_backend/internal/catalog"
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/controller"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"
	"skillpath_backend/pkg/security"
	"skillpath_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Catalog  *catalog.Catalog
	tracer   *sdktrace.TracerProvider
	ctx      context.Context
	cancel   context.CancelFunc
	services *services
}

type repositories struct {
	assessment  *repository.AssessmentRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
}

type services struct {
	assessment  *service.AssessmentService
	progress    *service.ProgressService
	achievement *service.AchievementService
	skill       *service.SkillService
	content     *service.ContentService
}

type controllers struct {
	content     *controller.ContentController
	assessment  *controller.AssessmentController
	progress    *controller.ProgressController
	achievement *controller.AchievementController
	skill       *controller.SkillController
	health      *controller.HealthController
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		assessment:  repository.NewAssessmentRepository(),
		progress:    repository.NewProgressRepository(),
		achievement: repository.NewAchievementRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.assessment = service.NewAssessmentService(repos.assessment, a.Catalog)
	s.achievement = service.NewAchievementService(repos.achievement, repos.progress)
	s.progress = service.NewProgressService(repos.progress, s.achievement, cfg.Certificate)
	s.skill = service.NewSkillService(a.Catalog)
	s.content = service.NewContentService(a.Catalog)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		content:     controller.NewContentController(s.content),
		assessment:  controller.NewAssessmentController(s.assessment),
		progress:    controller.NewProgressController(s.progress),
		achievement: controller.NewAchievementController(s.achievement, s.progress),
		skill:       controller.NewSkillController(s.skill),
		health:      controller.NewHealthController(repos.assessment, repos.progress),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func ginMode(mode string) string {
	switch mode {
	case util.ModeDebug:
		return gin.DebugMode
	case util.ModeTest:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Log.Info("Catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("skills", len(cat.Skills)),
		zap.Int("paths", len(cat.Paths)),
		zap.Int("roles", cat.TotalRoles()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:  cfg,
		Catalog: cat,
		ctx:     ctx,
		cancel:  cancel,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == util.ModeDebug {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app, nil
}

// Shutdown stops background workers and flushes the tracer and logger.
func (a *App) Shutdown(ctx context.Context) {
	a.cancel()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for SIGINT/SIGTERM, then allow 5s for in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		a.Shutdown(context.Background())
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer a.Shutdown(ctx)

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

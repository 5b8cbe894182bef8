package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/config"
	"github.com/prperemyshlev/vidverse/internal/handler"
	"github.com/prperemyshlev/vidverse/internal/repository"
	"github.com/prperemyshlev/vidverse/internal/service"
	"github.com/prperemyshlev/vidverse/internal/utils"
	"github.com/prperemyshlev/vidverse/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) (*App, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	services := newServices(infra, cfg)
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	cookies := handler.CookieConfig{
		Secure:        cfg.Server.CookieSecure,
		AccessMaxAge:  cfg.JWT.AccessTokenExpiry.Duration,
		RefreshMaxAge: cfg.JWT.RefreshTokenExpiry.Duration,
	}
	handlers := &handler.Handlers{
		User:         handler.NewUserHandler(services.User, cookies),
		Video:        handler.NewVideoHandler(services.Video),
		Comment:      handler.NewCommentHandler(services.Comment),
		Tweet:        handler.NewTweetHandler(services.Tweet),
		Like:         handler.NewLikeHandler(services.Like),
		Subscription: handler.NewSubscriptionHandler(services.Subscription),
		Playlist:     handler.NewPlaylistHandler(services.Playlist),
		Dashboard:    handler.NewDashboardHandler(services.Dashboard),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(otelgin.Middleware(serviceName))
	router.Use(handler.RecoveryMiddleware(infra.Logger()))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS))
	router.Use(handler.BodyLimitMiddleware(cfg.Server.MaxUploadBytes))
	router.Use(handler.ErrorHandler(infra.Logger()))

	limit := handler.RateLimitMiddleware(
		rateLimiter,
		infra.Metrics(),
		infra.Logger(),
		cfg.Security.RateLimitRequests,
		cfg.Security.RateLimitWindow.Duration,
		handler.RouteAndIPKey,
	)
	setupRoutes(router, handlers, handler.AuthMiddleware(services.Session), limit, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}, nil
}

func newServices(infra Infrastructure, cfg *config.Config) *service.Services {
	repos := repository.NewRepositories(infra.Postgres())
	logger := infra.Logger()

	jwtManager := utils.NewJWTManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry.Duration,
		cfg.JWT.RefreshTokenExpiry.Duration,
	)
	blacklist := service.NewTokenBlacklistService(infra.Redis())
	session := service.NewSessionService(repos.User, jwtManager, blacklist, logger)

	return &service.Services{
		Session:      session,
		User:         service.NewUserService(repos.User, session, infra.Mailer(), infra.Storage(), infra.Metrics(), cfg, logger),
		Video:        service.NewVideoService(repos.Video, infra.Storage(), infra.Metrics(), logger),
		Comment:      service.NewCommentService(repos.Comment, repos.Video),
		Tweet:        service.NewTweetService(repos.Tweet, repos.User),
		Like:         service.NewLikeService(repos.Like),
		Subscription: service.NewSubscriptionService(repos.Subscription),
		Playlist:     service.NewPlaylistService(repos.Playlist, repos.Video, repos.User),
		Dashboard:    service.NewDashboardService(repos.Dashboard, repos.Video),
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	handlers *handler.Handlers,
	auth gin.HandlerFunc,
	limit gin.HandlerFunc,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)
	router.NoRoute(handler.NoRoute)

	handler.RegisterRoutes(router.Group("/api/v1"), handlers, auth, limit)
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Drain HTTP first so in-flight requests can still reach Postgres and Redis.
	serverErr := a.server.Shutdown(ctx)
	infraErr := a.infra.Shutdown(ctx)

	if err := errors.Join(serverErr, infraErr); err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/agroconnect/docs"
	"github.com/aaravmahajanofficial/agroconnect/internal/api/handlers"
	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/cache"
	"github.com/aaravmahajanofficial/agroconnect/internal/config"
	"github.com/aaravmahajanofficial/agroconnect/internal/health"
	"github.com/aaravmahajanofficial/agroconnect/internal/metrics"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	repository "github.com/aaravmahajanofficial/agroconnect/internal/repositories"
	service "github.com/aaravmahajanofficial/agroconnect/internal/services"
	"github.com/aaravmahajanofficial/agroconnect/internal/storage"
	"github.com/aaravmahajanofficial/agroconnect/internal/telemetry"
	"github.com/aaravmahajanofficial/agroconnect/internal/validation"
	servertiming "github.com/mitchellh/go-server-timing"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						AgroConnect API
//	@version					1.0
//	@description				Commodity listing, moderation and marketplace service for farmers and buyers.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.OTel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Object storage setup
	objectStore, err := storage.NewS3Storage(ctx, &cfg.Storage)
	if err != nil {
		slog.Error("❌ Error configuring object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	healthChecker, err := health.NewHealthHandler(cfg, objectStore)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)

	userService := service.NewUserService(repos.Users, rateLimitRepo, redisCache, &cfg.Security)
	accountDirectory := service.NewAccountDirectory(repos.Users, redisCache, &cfg.Security, &cfg.Cache)
	commodityService := service.NewCommodityService(repos.Commodities, redisCache, validation.New(), &cfg.Cache)
	marketplaceService := service.NewMarketplaceService(repos.Commodities)
	moderationService := service.NewModerationService(repos.Commodities, redisCache)
	imageService := service.NewImageService(objectStore, &cfg.Storage)

	if err := userService.EnsureAdmin(ctx, &cfg.Admin); err != nil {
		slog.Error("❌ Error seeding the admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userHandler := handlers.NewUserHandler(userService)
	adminUserHandler := handlers.NewAdminUserHandler(userService)
	commodityHandler := handlers.NewCommodityHandler(commodityService)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	imageHandler := handlers.NewImageHandler(imageService, cfg.Storage.MaxUploadBytes)

	authMiddleware := middleware.NewAuthMiddleware(accountDirectory)
	adminOnly := func(next http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(models.RoleAdmin)(next))
	}
	marketplaceLimiter := middleware.NewRateLimiter(cfg.MarketplaceRate.RequestsPerSecond, cfg.MarketplaceRate.Burst)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("POST /api/v1/commodities", authMiddleware.Authenticate(commodityHandler.CreateCommodity()))
	routerMux.HandleFunc("GET /api/v1/commodities/mine", authMiddleware.Authenticate(commodityHandler.ListCommodities()))
	routerMux.HandleFunc("POST /api/v1/commodities/images", authMiddleware.Authenticate(imageHandler.UploadImage()))
	routerMux.HandleFunc("GET /api/v1/commodities/{id}", authMiddleware.OptionalAuthenticate(commodityHandler.GetCommodity()))
	routerMux.HandleFunc("PATCH /api/v1/commodities/{id}", authMiddleware.Authenticate(commodityHandler.UpdateCommodity()))
	routerMux.HandleFunc("DELETE /api/v1/commodities/{id}", authMiddleware.Authenticate(commodityHandler.DeleteCommodity()))

	routerMux.HandleFunc("GET /api/v1/marketplace", marketplaceLimiter.Limit(marketplaceHandler.ListMarketplace()))

	routerMux.HandleFunc("GET /api/v1/admin/commodities", adminOnly(commodityHandler.ListCommodities()))
	routerMux.HandleFunc("PATCH /api/v1/admin/commodities/{id}/status", adminOnly(moderationHandler.ModerateCommodity()))
	routerMux.HandleFunc("POST /api/v1/admin/commodities/{id}/approve", adminOnly(moderationHandler.ApproveCommodity()))
	routerMux.HandleFunc("POST /api/v1/admin/commodities/{id}/reject", adminOnly(moderationHandler.RejectCommodity()))
	routerMux.HandleFunc("POST /api/v1/admin/commodities/{id}/revert", adminOnly(moderationHandler.RevertCommodity()))
	routerMux.HandleFunc("GET /api/v1/admin/users", adminOnly(adminUserHandler.ListUsers()))
	routerMux.HandleFunc("PATCH /api/v1/admin/users/{id}/status", adminOnly(adminUserHandler.UpdateUserStatus()))
	routerMux.HandleFunc("DELETE /api/v1/admin/users/{id}", adminOnly(adminUserHandler.DeleteUser()))

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = servertiming.Middleware(handler, nil)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

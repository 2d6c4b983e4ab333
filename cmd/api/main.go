package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/antarid/antar/internal/pkg/config"
	"github.com/antarid/antar/internal/pkg/database"
	"github.com/antarid/antar/internal/pkg/health"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/middleware"
	natspkg "github.com/antarid/antar/internal/pkg/nats"
	"github.com/antarid/antar/internal/pkg/otp"
	"github.com/antarid/antar/internal/pkg/pricing"
	"github.com/antarid/antar/internal/pkg/retry"
	"github.com/antarid/antar/internal/pkg/server"
	ridesgateway "github.com/antarid/antar/services/rides/gateway"
	rideshandler "github.com/antarid/antar/services/rides/handler"
	rideshttp "github.com/antarid/antar/services/rides/handler/http"
	ridesrepository "github.com/antarid/antar/services/rides/repository"
	ridesusecase "github.com/antarid/antar/services/rides/usecase"
	usersgateway "github.com/antarid/antar/services/users/gateway"
	usershandler "github.com/antarid/antar/services/users/handler"
	usershttp "github.com/antarid/antar/services/users/handler/http"
	usersrepository "github.com/antarid/antar/services/users/repository"
	usersusecase "github.com/antarid/antar/services/users/usecase"
)

func main() {
	appName := "antar-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName, configs.App.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Dependencies may still be starting alongside this process, so
	// connections retry with backoff before giving up.
	bootCtx := context.Background()

	var postgresClient *database.PostgresClient
	err = retry.Do(bootCtx, "postgres", retry.DefaultConfig(), func() error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	if configs.Database.AutoMigrate {
		if err := database.RunMigrations(configs.Database, "file://migrations"); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.Err(err))
		}
		zapLogger.Info("Database migrations applied")
	}

	// Redis is optional; the rate limiter and beacon store degrade without it.
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		err = retry.Do(bootCtx, "redis", retry.DefaultConfig(), func() error {
			var connErr error
			redisClient, connErr = database.NewRedisClient(configs.Redis)
			return connErr
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
	}

	var natsClient *natspkg.Client
	err = retry.Do(bootCtx, "nats", retry.DefaultConfig(), func() error {
		var connErr error
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Verification code store
	var otpStore otp.Store
	var memStore *otp.MemoryStore
	if redisClient != nil {
		otpStore = otp.NewRedisStore(redisClient.Client)
	} else {
		memStore = otp.NewMemoryStore()
		otpStore = memStore
		zapLogger.Warn("Redis not configured, verification codes are kept in process memory")
	}

	// Initialize repositories
	userRepo := usersrepository.NewUserRepo(postgresClient)
	beaconRepo := usersrepository.NewBeaconRepo(redisClient)
	rideRepo := ridesrepository.NewRideRepo(postgresClient)

	// Initialize gateways
	userGW := usersgateway.NewUserGW(natsClient)
	rideGW := ridesgateway.NewRideGW(natsClient)

	// Initialize usecases
	userUC := usersusecase.NewUserUC(userRepo, beaconRepo, userGW, otpStore, configs)
	rideUC := ridesusecase.NewRideUC(rideRepo, rideGW, pricing.NewEstimator(configs.Pricing))

	// Initialize HTTP handlers
	authHandler := usershttp.NewAuthHandler(userUC)
	userHandler := usershttp.NewUserHandler(userUC)
	rideHandler := rideshttp.NewRideHandler(rideUC)

	usersRoutes := usershandler.NewHandler(authHandler, userHandler, configs, redisClient)
	ridesRoutes := rideshandler.NewHandler(rideHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Health and metrics endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	usersRoutes.RegisterRoutes(e)
	ridesRoutes.RegisterRoutes(e)

	// Dependency teardown after the HTTP server has drained.
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("nats", func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	if memStore != nil {
		shutdownManager.Register("otp-store", func(ctx context.Context) error {
			memStore.Close()
			return nil
		})
	}
	if redisClient != nil {
		shutdownManager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
	}
	shutdownManager.Register("postgres", func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}

	zapLogger.Info("Application stopped", logger.String("app", appName))
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"smarthome/config"
	"smarthome/cron"
	"smarthome/database"
	bookingRepo "smarthome/database/repository/booking"
	paymentRepo "smarthome/database/repository/payment"
	serviceRepo "smarthome/database/repository/service"
	userRepoPkg "smarthome/database/repository/user"
	"smarthome/handlers"
	"smarthome/middleware"
	"smarthome/routes"
	"smarthome/services/booking"
	"smarthome/services/catalog"
	"smarthome/services/payment"
	"smarthome/services/user"
	"smarthome/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.GetLogger().Fatal("main: failed to load config", zap.Error(err))
	}
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Disconnect(mongoClient, logger)
	db := mongoClient.Database(cfg.DatabaseName)

	cacheClient, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Warn("main: Redis cache unavailable, serving without cache", zap.Error(err))
	} else {
		defer cacheClient.Close()
	}

	firebaseAuth, err := utils.NewFirebaseAuth(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Fatal("main: failed to initialize Firebase", zap.Error(err))
	}

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	payments := paymentRepo.NewMongoPaymentRepo(db)
	servicesRepo := serviceRepo.NewMongoServiceRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"bookings": bookings.EnsureIndexes,
		"payments": payments.EnsureIndexes,
		"users":    userRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Error("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	// services.
	var serviceCache catalog.ServiceCache
	if cacheClient != nil {
		serviceCache = catalog.NewRedisServiceCache(cacheClient, cfg.ServiceCacheTTL)
	}
	catalogService := catalog.NewCatalogService(servicesRepo, serviceCache, logger)
	bookingService := booking.NewBookingService(bookings, catalogService, logger)
	userService := user.NewUserService(userRepo, logger)
	paymentService := payment.NewPaymentService(
		bookings,
		payments,
		payment.NewStripeGateway(cfg.StripeKey),
		payment.Options{Currency: cfg.StripeCurrency, ClientURL: cfg.ClientURL},
		logger,
	)

	// background jobs.
	redisPings := []utils.PingFunc{}
	if cacheClient != nil {
		redisPings = append(redisPings, utils.RedisPinger(cacheClient))
	}
	monitor := utils.NewHealthMonitor(utils.MongoPinger(mongoClient), redisPings, utils.HealthCheckInterval)
	monitor.Start(ctx)

	var auditWorker *cron.AuditWorker
	if cfg.AuditEnabled {
		auditor := payment.NewAuditor(bookings, payments, logger)
		auditWorker, err = cron.StartAuditWorker(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}, cfg.AuditSchedule, auditor, logger)
		if err != nil {
			logger.Error("main: payment audit disabled", zap.Error(err))
		}
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		firebaseAuth,
		handlers.NewPaymentHandler(paymentService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewServiceHandler(catalogService),
		handlers.NewUserHandler(userService),
		handlers.NewHealthHandler(monitor),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if auditWorker != nil {
		auditWorker.Shutdown()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seminarly/config"
	"seminarly/cron"
	"seminarly/database"
	"seminarly/database/repository"
	"seminarly/handlers"
	"seminarly/middleware"
	"seminarly/routes"
	"seminarly/services/analytics"
	"seminarly/services/booking"
	"seminarly/services/events"
	"seminarly/services/notification"
	"seminarly/services/payment"
	"seminarly/services/seminar"
	"seminarly/services/storage"
	"seminarly/services/user"
	"seminarly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}

	// repositories.
	var repos repository.Set
	if config.UseMemoryStore() {
		logger.Warn("main: using in-memory store, data is lost on restart")
		repos = repository.NewMemorySet()
	} else {
		database.InitDB()
		repos = repository.NewMongoSet(database.DB())
	}

	cache := utils.GetCacheClient()
	timeout := config.AppConfig.ExternalCallTimeout

	// external collaborators.
	stripe.Key = config.AppConfig.StripeKey
	gateway := payment.NewStripeGateway(config.AppConfig.PaymentCurrency)

	var images storage.ImageStore
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: proof uploads disabled", zap.Error(err))
		images = storage.NewUnconfiguredStore()
	} else {
		images = storage.NewCloudinaryImageStore(cld, config.AppConfig.CloudinaryFolder)
	}

	var sender notification.NotificationService = notification.LogNotificationService{Logger: logger}
	if config.AppConfig.SendGridAPIKey != "" {
		sender = notification.NewSendGridNotificationService(
			config.AppConfig.SendGridAPIKey,
			config.AppConfig.MailFromName,
			config.AppConfig.MailFromAddress,
		)
	}

	// Emails go through the asynq queue when Redis is reachable.
	notifier := sender
	var (
		queueClient *asynq.Client
		worker      *asynq.Server
	)
	if cache != nil {
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		notifier = notification.NewQueueNotificationService(queueClient)
		worker = cron.InitNotificationWorker(sender)
	}

	var publisher events.Publisher = events.LogPublisher{Logger: logger}
	if config.AppConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(config.AppConfig.AMQPURL, config.AppConfig.EventsExchange)
		if err != nil {
			logger.Warn("main: booking events will only be logged", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}

	// services.
	userService := user.NewDefaultUserService(repos.Users, config.AppConfig.TokenTTL)
	seminarService := seminar.NewDefaultSeminarService(repos.Seminars, repos.Bookings)
	analyticsService := analytics.NewDefaultAnalyticsService(
		repos.Analytics, repos.Users, repos.Seminars, cache, config.AppConfig.AnalyticsCacheTTL,
	)
	bookingService := booking.NewDefaultBookingService(
		repos.Seminars, repos.Bookings, repos.Users,
		gateway, images, notifier, publisher,
		logger, timeout,
	)
	bookingService.Cache = analyticsService

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureAdmin(seedCtx, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Error("main: failed to seed admin account", zap.Error(err))
	}
	cancelSeed()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, cache, database.MongoClient, 30*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	userHandler := handlers.NewUserHandler(userService)
	seminarHandler := handlers.NewSeminarHandler(seminarService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	storageHandler := handlers.NewStorageHandler(images)
	adminHandler := handlers.NewAdminHandler(userService, analyticsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: repos.Users,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,

		// Seminar endpoints.
		ListSeminarsHandler:  seminarHandler.ListSeminarsHandler,
		GetSeminarHandler:    seminarHandler.GetSeminarHandler,
		CreateSeminarHandler: seminarHandler.CreateSeminarHandler,
		UpdateSeminarHandler: seminarHandler.UpdateSeminarHandler,
		DeleteSeminarHandler: seminarHandler.DeleteSeminarHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetMyBookingsHandler:       bookingHandler.GetMyBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,

		// Storage endpoints.
		UploadProofHandler: storageHandler.UploadProofHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
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
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if err := publisher.Close(); err != nil {
		logger.Warn("main: failed to close event publisher", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close database", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

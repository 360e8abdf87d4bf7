// File: travix/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travix/config"
	"travix/cron"
	"travix/database"
	bookingRepo "travix/database/repository/booking"
	"travix/handlers"
	"travix/middleware"
	"travix/models"
	"travix/routes"
	"travix/services/booking"
	"travix/services/dateparse"
	ai "travix/services/intelligence"
	"travix/services/notification"
	"travix/services/search"
	"travix/services/tasks"
	"travix/services/trip"
	"travix/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	currency := config.AppConfig.Currency

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	cacheClient := utils.GetCacheClient()
	contextClient := utils.GetContextCacheClient()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxyList()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger.Named("RateLimiter")))

	// repositories.
	var repo bookingRepo.BookingRepository = bookingRepo.NewMemoryBookingRepo()
	if database.MongoClient != nil {
		mongoRepo, err := bookingRepo.NewMongoBookingRepo(database.Database())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
		}
		repo = mongoRepo
	}

	// booking.
	var payments booking.PaymentGateway = booking.NoopGateway{}
	if config.AppConfig.StripeKey != "" {
		payments = booking.NewStripeGateway(config.AppConfig.StripeKey)
	}
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()
	worker := cron.InitConfirmationWorker(notification.NewLogNotifier(logger.Named("Notifier")))

	bookingService := booking.NewBookingService(
		repo,
		payments,
		tasks.NewConfirmationQueue(queueClient),
		logger.Named("BookingService"),
	)

	// intelligence.
	var (
		parser    trip.IntentParser  = ai.NewPatternParser()
		hotels    trip.HotelSearcher = search.NewHotelSearch(currency)
		assistant trip.Assistant
	)
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Error("Gemini unavailable, using pattern matching", zap.Error(err))
		} else {
			defer gemini.Close()
			parser = ai.NewGeminiParser(gemini.WithJSONOutput(ai.IntentSchema), logger.Named("NLU"))
			hotels = ai.NewGeminiHotelSearch(gemini.WithJSONOutput(nil), search.NewHotelSearch(currency), currency, logger.Named("HotelSearch"))
			assistant = ai.NewGeminiAssistant(gemini)
		}
	}

	// search.
	searchTTL := config.SearchCacheTTL()
	searchLogger := logger.Named("SearchCache")
	transport := map[models.Mode]trip.TransportSearcher{
		models.ModeFlight: search.NewCachedTransportSearch(search.NewFlightSearch(currency), models.ModeFlight, cacheClient, searchTTL, searchLogger),
		models.ModeTrain:  search.NewCachedTransportSearch(search.NewTrainSearch(currency), models.ModeTrain, cacheClient, searchTTL, searchLogger),
		models.ModeBus:    search.NewCachedTransportSearch(search.NewBusSearch(currency), models.ModeBus, cacheClient, searchTTL, searchLogger),
	}

	// metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tripService := trip.NewTripService(trip.Dependencies{
		Parser:    parser,
		Dates:     dateparse.New(),
		Transport: transport,
		Hotels:    hotels,
		Cabs:      search.NewCabSearch(),
		Booker:    bookingService,
		Assistant: assistant,
		Metrics:   trip.NewMetrics(registry),
		Currency:  currency,
	}, logger.Named("TripService"))

	ctxStore := ai.NewRedisContextStore(contextClient, config.ContextTTL())
	tripHandler := handlers.NewTripHandler(tripService, ctxStore, logger.Named("TripHandler"))
	bookingHandler := handlers.NewBookingHandler(bookingService, logger.Named("BookingHandler"))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TripTurnHandler:          tripHandler.HandleTurn,
		ClearSessionHandler:      tripHandler.ClearSession,
		GetBookingHandler:        bookingHandler.GetBooking,
		CancelBookingHandler:     bookingHandler.CancelBooking,
		RescheduleBookingHandler: bookingHandler.RescheduleBooking,
		HealthHandler:            handlers.HealthHandler,
		MetricsHandler:           gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	}
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, map[string]*redis.Client{
		"cache":   cacheClient,
		"context": contextClient,
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"ticketo/internal/config"
	"ticketo/internal/handlers"
	"ticketo/internal/kafka"
	"ticketo/internal/logger"
	"ticketo/internal/mailer"
	"ticketo/internal/middleware"
	rediswrap "ticketo/internal/redis"
	"ticketo/internal/services"
	"ticketo/internal/storage"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "Ticketo backend starting up...")

	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	log.LogProcess("DATABASE", "Initializing "+cfg.Store.Driver+" store...")
	var store storage.Store
	switch cfg.Store.Driver {
	case "mysql":
		mysqlStore, err := storage.NewMySQLStore(cfg.Database, log)
		if err != nil {
			log.Fatal("DATABASE", "Failed to initialize MySQL store: "+err.Error())
		}
		defer mysqlStore.Close()
		store = mysqlStore
	case "memory":
		log.Warn("DATABASE", "Using in-memory store, nothing will survive a restart")
		store = storage.NewInMemoryStore()
	default:
		store = storage.NewFileStore(cfg.Store.Path, log)
	}

	// Seed on first run, and refuse to serve over corrupt state.
	if _, err := store.Load(); err != nil {
		log.Fatal("DATABASE", "Failed to load persisted state: "+err.Error())
	}
	log.LogDatabase("INIT", "document", "Store initialized successfully")

	writer := storage.NewSingleWriter(store)

	var eventCache *rediswrap.EventCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
		})
		eventCache = rediswrap.NewEventCache(redisClient, cfg.Redis.CacheTTL)
		log.LogProcess("SERVICE", "Redis event cache enabled at "+cfg.Redis.Addr)
	}

	log.LogProcess("KAFKA", "Initializing Kafka producer...")
	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.MockMode, log)
	if err != nil {
		log.Fatal("KAFKA", "Failed to create Kafka producer: "+err.Error())
	}
	defer kafkaProducer.Close()

	bookingMailer := mailer.New(cfg.SMTP, log)
	if bookingMailer != nil {
		log.LogProcess("SERVICE", "Booking confirmation mailer enabled")
	}

	// Initialize services
	eventService := services.NewEventService(writer, eventCache, log, cfg.Booking.PositionalLookup)
	promotionService := services.NewPromotionService(writer, log)
	bookingService := services.NewBookingService(writer, kafkaProducer, bookingMailer, log, cfg.Booking.PositionalLookup)
	authService := services.NewAuthService(writer, log)
	log.LogProcess("SERVICE", "All services initialized")

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(authService)
	log.LogProcess("HANDLER", "All handlers initialized")

	router := setupRouter(eventHandler, promotionHandler, bookingHandler, authHandler)
	log.LogProcess("ROUTER", "HTTP router configured")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on port "+cfg.Server.Port)
		log.Info("STARTUP", "🚀 Ticketo backend is ready to accept requests!")
		log.Info("STARTUP", "📊 Health check available at: http://localhost:"+cfg.Server.Port+"/health")
		log.Info("STARTUP", "🎟  Booking API available at: http://localhost:"+cfg.Server.Port+"/api/bookings")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "✅ Ticketo backend shutdown completed successfully")
}

func setupRouter(
	eventHandler *handlers.EventHandler,
	promotionHandler *handlers.PromotionHandler,
	bookingHandler *handlers.BookingHandler,
	authHandler *handlers.AuthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.EnhancedLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(log))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"service":   "ticketo-backend",
			"timestamp": time.Now().UTC(),
		})
	}
	router.GET("/health", health)

	api := router.Group("/api")
	{
		api.GET("/health", health)

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", eventHandler.CreateEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		api.GET("/promotions", promotionHandler.ListPromotions)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingHandler.ListBookings)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.PUT("/:id", bookingHandler.UpdateStatus)
			bookings.DELETE("/:id", bookingHandler.DeleteBooking)
		}

		api.POST("/auth/login", authHandler.Login)
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}

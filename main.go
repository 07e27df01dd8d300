// File: meetwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetwise/config"
	"meetwise/cron"
	"meetwise/database"
	bookingsRepo "meetwise/database/repository/bookings"
	"meetwise/handlers"
	"meetwise/middleware"
	"meetwise/routes"
	"meetwise/services/booking"
	"meetwise/services/calendar"
	"meetwise/services/conversation"
	ai "meetwise/services/intelligence"
	"meetwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	rootCtx := context.Background()

	calendarProvider, err := calendar.NewGoogleProvider(rootCtx,
		config.AppConfig.GoogleCredentialsFile, config.AppConfig.CalendarID)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar provider: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingsRepo.NewMongoBookingRepo()

	// services.
	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	orchestrator := conversation.NewOrchestrator(calendarProvider, geminiClient)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultBookingService{
		Calendar:    calendarProvider,
		Repo:        bookingRepo,
		AsynqClient: asynqClient,
	}

	// Reminders land back in the originating chat session.
	cron.InitReminderWorker(&conversation.ReminderNotifier{Store: sessionStore})

	chatHandler := handlers.NewChatHandler(orchestrator, sessionStore)
	confirmHandler := handlers.NewConfirmHandler(bookingService, sessionStore)

	routes.RegisterChatRoutes(router, chatHandler, confirmHandler)
	routes.RegisterHealthRoute(router)

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

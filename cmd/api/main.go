package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"io.resqforce.server/internal/db"
	"io.resqforce.server/internal/dispatch"
	"io.resqforce.server/internal/handlers"
	"io.resqforce.server/internal/jobs"
	"io.resqforce.server/internal/middleware"
	"io.resqforce.server/internal/notify"
	"io.resqforce.server/internal/session"
	"io.resqforce.server/internal/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize PostgreSQL
	postgresDB, err := db.InitPostgres()
	if err != nil {
		logger.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer postgresDB.Close()

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		logger.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	st := store.New(postgresDB)
	sessions := session.NewManager(redisClient)

	var notifier notify.Notifier = notify.Disabled{}
	if apiKey := os.Getenv("SENDGRID_API_KEY"); apiKey != "" && os.Getenv("EMAIL_ADDRESS") != "" {
		notifier = notify.NewSendGridNotifier(apiKey, os.Getenv("EMAIL_ADDRESS"), logger)
	} else {
		logger.Warn("SENDGRID_API_KEY or EMAIL_ADDRESS not configured, notifications disabled")
	}

	coordinator := dispatch.NewCoordinator(st, st, notifier, logger)

	// Escalate long-pending emergencies to heavy-response agencies
	sweeper := jobs.NewEscalationSweeper(st, notifier, escalationMaxAge(), logger)
	if err := sweeper.Start(envOrDefault("ESCALATION_CRON", "*/15 * * * *")); err != nil {
		logger.Fatalf("Failed to start escalation sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Initialize Gin router
	gin.SetMode(envOrDefault("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// CORS for the browser frontend, with credentials for the session cookie
	allowedOrigin := envOrDefault("ALLOWED_ORIGIN", "http://localhost:5173")
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, sessions, logger)
	agencyHandler := handlers.NewAgencyHandler(st, sessions, logger)
	emergencyHandler := handlers.NewEmergencyHandler(st, coordinator, logger)

	// Define routes
	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ResQForce API is running"})
		})
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/check_session", authHandler.CheckSession)

		api.POST("/report_emergency", emergencyHandler.Report)
		api.GET("/emergencies", emergencyHandler.ListPending)
		api.POST("/delete_emergencies", emergencyHandler.DeleteAll)

		// Session-protected routes
		authed := api.Group("")
		authed.Use(middleware.RequireSession(sessions))
		{
			authed.POST("/update_location", agencyHandler.UpdateLocation)
			authed.GET("/emergency_details", emergencyHandler.Details)
			authed.GET("/agencies", agencyHandler.List)
			authed.DELETE("/emergency/:id", emergencyHandler.Delete)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + envOrDefault("PORT", "5000"),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	// Let in-flight notifications finish
	coordinator.Wait()

	logger.Info("Server exited")
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func escalationMaxAge() time.Duration {
	minutes, err := strconv.Atoi(envOrDefault("ESCALATION_MAX_AGE_MINUTES", "60"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

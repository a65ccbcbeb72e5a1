package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/venturedesk/pitch-simulator/pkg/validator"

	"github.com/venturedesk/pitch-simulator/internal/adapter/handler"
	pitchuse "github.com/venturedesk/pitch-simulator/internal/usecase/pitch"
	simuse "github.com/venturedesk/pitch-simulator/internal/usecase/simulation"
	"github.com/venturedesk/pitch-simulator/pkg/config"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// @title           Pitch Simulator API
// @version         1.0
// @description     Backend for the interactive VC pitch simulation demo: pitch analysis, due diligence, committee debate, board scenarios and term negotiation.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Pitch videos arrive as multipart uploads; cap the body size
	e.Use(middleware.BodyLimit("64M"))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the Gemini client
	log.Println("🤖 Initializing Gemini client...")
	geminiClient := gemini.NewClient(&cfg.Gemini)
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set; analysis calls will fail until it is configured")
	}

	// Initialize services
	log.Println("📊 Initializing pitch analysis service...")
	pitchService := pitchuse.NewService(geminiClient, logger)

	log.Println("🎭 Initializing simulation service...")
	simulationService := simuse.NewService(geminiClient, &cfg.Simulation, logger)

	// Initialize controllers
	pitchController := handler.NewPitchController(pitchService, logger)
	simulationController := handler.NewSimulationController(simulationService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, pitchController, simulationController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

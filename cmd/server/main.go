// Package main is the entry point for the Portal88 Wall API
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/portal88/wallapi/internal/api"
	"github.com/portal88/wallapi/internal/api/middleware"
	"github.com/portal88/wallapi/internal/config"
	"github.com/portal88/wallapi/internal/repository"
	"github.com/portal88/wallapi/internal/service"
	"github.com/portal88/wallapi/pkg/utils/zaplogger"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Print the configuration
	fmt.Println(cfg.String())

	// Setup logger
	defer zaplogger.Sync()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// startUpMessage
	zaplogger.Info(cfg.APIName + " - " + cfg.APIVersion + " initialized")

	// Open the JSON data store and load the collections
	store := repository.NewStore(cfg.DataDir)
	users := repository.NewUserRepository(store)
	posts := repository.NewPostRepository(store)
	reports := repository.NewReportRepository(store)
	zaplogger.Info("Collections loaded", zaplogger.Fields{
		"users":   users.Count(),
		"posts":   posts.Count(),
		"reports": reports.Count(),
	})

	// Session table and presence tracker, in-memory for the process lifetime
	sessions := service.NewSessionService()
	presence := service.NewPresenceService()

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Static assets for the browser client
	e.Static("/", cfg.PublicDir)

	// Setup routes
	api.SetupRoutes(e, cfg, users, posts, reports, sessions, presence)

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, sessions, presence, users, posts, reports)
	cronService.Start()

	// Start the server
	startServer(e, cfg)

}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}
	zaplogger.Info("SERVER STARTED ON PORT " + port)
	e.Logger.Fatal(e.Start(":" + port))

}

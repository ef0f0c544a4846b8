// Package api contains the API routes for the Portal88 Wall API
package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/portal88/wallapi/internal/api/handlers"
	"github.com/portal88/wallapi/internal/api/middleware"
	"github.com/portal88/wallapi/internal/config"
	"github.com/portal88/wallapi/internal/repository"
	"github.com/portal88/wallapi/internal/service"
	"github.com/portal88/wallapi/pkg/utils/response"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(e *echo.Echo, cfg *config.Config, users *repository.UserRepository, posts *repository.PostRepository, reports *repository.ReportRepository, sessions *service.SessionService, presence *service.PresenceService) {

	// Request gate: every route resolves the session and refreshes presence
	e.Use(middleware.SessionMiddleware(sessions, presence))

	// Create a group for all API routes
	api := e.Group("/api")

	// Index route
	api.GET("/", func(c echo.Context) error {
		return response.SuccessResponse(c, echo.Map{
			"message": fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion),
		})
	})

	// Auth routes (unprotected; gated operations check identity themselves)
	authService := service.NewAuthService(users, sessions, presence)
	authHandler := handlers.NewAuthHandler(authService)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/logout", authHandler.Logout)
	api.GET("/me", authHandler.Me)

	// Online-count route
	presenceHandler := handlers.NewPresenceHandler(presence)
	api.GET("/online", presenceHandler.Online)

	// Post routes
	postService := service.NewPostService(posts)
	postHandler := handlers.NewPostHandler(postService)
	api.GET("/posts", postHandler.ListPosts)
	api.POST("/post", postHandler.CreatePost)
	api.DELETE("/post/:id", postHandler.DeletePost)

	// Report routes
	reportService := service.NewReportService(posts, reports)
	reportHandler := handlers.NewReportHandler(reportService)
	api.POST("/report/:id", reportHandler.ReportPost)
}

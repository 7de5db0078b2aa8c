package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/config"
	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/database"
	"github.com/yukikurage/hr-management-api/internal/handlers"
	"github.com/yukikurage/hr-management-api/internal/middleware"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	tokens := services.NewTokenService(cfg.JWTSecret, constants.TokenTTL)
	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, auditRepo, tokens)
	employeeService := services.NewEmployeeService(employeeRepo, auditService)
	teamService := services.NewTeamService(teamRepo, employeeRepo, auditService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	teamHandler := handlers.NewTeamHandler(teamService)
	logHandler := handlers.NewLogHandler(auditService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "HR Management API is running",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokens, userRepo))
	{
		employees := protected.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.POST("", employeeHandler.Create)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("", teamHandler.List)
			teams.POST("", teamHandler.Create)
			teams.POST("/:id/assign", teamHandler.Assign)
			teams.DELETE("/:id/unassign", teamHandler.Unassign)
			teams.GET("/:id/members", teamHandler.Members)
		}

		protected.GET("/logs", logHandler.List)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

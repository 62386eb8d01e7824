package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirokane/todo-app-api/internal/auth"
	"github.com/shirokane/todo-app-api/internal/config"
	"github.com/shirokane/todo-app-api/internal/database"
	"github.com/shirokane/todo-app-api/internal/handlers"
	"github.com/shirokane/todo-app-api/internal/middleware"
	"github.com/shirokane/todo-app-api/internal/repository"
	"github.com/shirokane/todo-app-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	// Initialize services
	tokenService := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := services.NewAuthService(userRepo, tokenService)
	todoService := services.NewTodoService(todoRepo)
	userService := services.NewUserService(userRepo)
	addressService := services.NewAddressService(addressRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.CookieMaxAgeSeconds)
	todoHandler := handlers.NewTodoHandler(todoService)
	userHandler := handlers.NewUserHandler(userService, authService)
	addressHandler := handlers.NewAddressHandler(addressService)

	// Initialize Gin router
	r := gin.Default()

	// Identity is resolved for every request; routes opt into RequireAuth.
	r.Use(middleware.ResolveIdentity(tokenService))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/token", authHandler.Login)
		authRoutes.GET("/logout", authHandler.Logout)
		authRoutes.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	}

	// Todo routes (protected)
	todos := r.Group("/todos")
	todos.Use(middleware.RequireAuth())
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.PATCH("/:id/complete", todoHandler.CompleteTodo)
	}

	// User routes (protected)
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/edit-password", userHandler.ChangePassword)
		users.DELETE("", userHandler.DeleteCurrentUser)
	}

	// Address routes (protected)
	address := r.Group("/address")
	address.Use(middleware.RequireAuth())
	{
		address.POST("", addressHandler.CreateAddress)
		address.GET("", addressHandler.GetAddress)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

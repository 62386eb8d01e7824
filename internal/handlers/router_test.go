package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirokane/todo-app-api/internal/auth"
	"github.com/shirokane/todo-app-api/internal/constants"
	"github.com/shirokane/todo-app-api/internal/database"
	"github.com/shirokane/todo-app-api/internal/middleware"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/repository"
	"github.com/shirokane/todo-app-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires the full application against an in-memory database, with
// the same routes as cmd/server.
type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	tokenService   *auth.TokenService
	authService    *services.AuthService
	todoService    *services.TodoService
	userService    *services.UserService
	addressService *services.AddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	tokenService := auth.NewTokenService("test-secret", 60*time.Minute)
	authService := services.NewAuthService(userRepo, tokenService)
	todoService := services.NewTodoService(todoRepo)
	userService := services.NewUserService(userRepo)
	addressService := services.NewAddressService(addressRepo, userRepo)

	authHandler := NewAuthHandler(authService, constants.DefaultCookieMaxAgeSeconds)
	todoHandler := NewTodoHandler(todoService)
	userHandler := NewUserHandler(userService, authService)
	addressHandler := NewAddressHandler(addressService)

	r := gin.New()
	r.Use(middleware.ResolveIdentity(tokenService))

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/token", authHandler.Login)
		authRoutes.GET("/logout", authHandler.Logout)
		authRoutes.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	}

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

	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/edit-password", userHandler.ChangePassword)
		users.DELETE("", userHandler.DeleteCurrentUser)
	}

	address := r.Group("/address")
	address.Use(middleware.RequireAuth())
	{
		address.POST("", addressHandler.CreateAddress)
		address.GET("", addressHandler.GetAddress)
	}

	return &testEnv{
		db:             db,
		router:         r,
		tokenService:   tokenService,
		authService:    authService,
		todoService:    todoService,
		userService:    userService,
		addressService: addressService,
	}
}

// register creates a user through the service and returns it.
func (e *testEnv) register(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	user, err := e.authService.Register(services.RegisterInput{
		Email:                email,
		Username:             username,
		FirstName:            "Test",
		LastName:             "User",
		Password:             password,
		PasswordConfirmation: password,
	})
	require.NoError(t, err)
	return user
}

// login performs a real login request and returns the session cookie.
func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.AccessTokenCookie {
			return cookie
		}
	}
	t.Fatal("expected access_token cookie to be set")
	return nil
}

// do performs a request against the test router.
func (e *testEnv) do(t *testing.T, method, url string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

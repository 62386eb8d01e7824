package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shirokane/todo-app-api/internal/dto"
	apierrors "github.com/shirokane/todo-app-api/internal/errors"
	"github.com/shirokane/todo-app-api/internal/middleware"
	"github.com/shirokane/todo-app-api/internal/services"
	"github.com/shirokane/todo-app-api/internal/utils"
)

// TodoHandler coordinates the ownership-scoped todo endpoints.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// ListTodos returns the caller's todos, paginated.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	todos, total, err := h.todoService.List(identity, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch todos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos, params.Page, params.Limit, total))
}

// GetTodo returns one of the caller's todos by id.
func (h *TodoHandler) GetTodo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(identity, id)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// CreateTodo creates a todo owned by the caller.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	type CreateTodoRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    int    `json:"priority" binding:"required,min=1,max=5"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Create(identity, services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// UpdateTodo replaces all mutable fields of one of the caller's todos.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTodoRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    int    `json:"priority" binding:"required,min=1,max=5"`
		Completed   bool   `json:"completed"`
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Update(identity, id, services.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// DeleteTodo deletes one of the caller's todos.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(identity, id); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{
		Status:      http.StatusOK,
		Transaction: "Successful",
	})
}

// CompleteTodo toggles the completed flag of one of the caller's todos.
func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todoService.ToggleComplete(identity, id)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTodoTitleEmpty),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

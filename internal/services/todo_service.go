package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirokane/todo-app-api/internal/auth"
	"github.com/shirokane/todo-app-api/internal/constants"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/repository"
	"github.com/shirokane/todo-app-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrTodoTitleEmpty  = errors.New("title cannot be empty")
	ErrInvalidPriority = fmt.Errorf("priority must be between %d and %d", constants.MinTodoPriority, constants.MaxTodoPriority)
)

// TodoService handles ownership-scoped todo business logic. Every operation
// takes the caller's identity and never touches rows of other owners: a
// foreign row and a missing row are the same ErrTodoNotFound.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	Title       string
	Description string
	Priority    int
}

// UpdateTodoInput carries the full set of mutable fields. Update is a
// whole-record replace, not a partial patch.
type UpdateTodoInput struct {
	Title       string
	Description string
	Priority    int
	Completed   bool
}

// List returns the caller's todos with pagination.
func (s *TodoService) List(identity auth.Identity, params utils.PaginationParams) ([]models.Todo, int64, error) {
	todos, total, err := s.todoRepo.ListByOwner(identity.UserID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, total, nil
}

// Get fetches one of the caller's todos by id.
func (s *TodoService) Get(identity auth.Identity, id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(id, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// Create validates the payload and persists a todo owned by the caller.
func (s *TodoService) Create(identity auth.Identity, input CreateTodoInput) (*models.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTodoTitleEmpty
	}
	if input.Priority < constants.MinTodoPriority || input.Priority > constants.MaxTodoPriority {
		return nil, ErrInvalidPriority
	}

	todo := &models.Todo{
		Title:       title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   false,
		OwnerID:     identity.UserID,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// Update re-fetches the todo by id and owner, then overwrites all mutable
// fields. OwnerID is immutable.
func (s *TodoService) Update(identity auth.Identity, id uint64, input UpdateTodoInput) (*models.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTodoTitleEmpty
	}
	if input.Priority < constants.MinTodoPriority || input.Priority > constants.MaxTodoPriority {
		return nil, ErrInvalidPriority
	}

	todo, err := s.todoRepo.FindByIDAndOwner(id, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	todo.Title = title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.Completed = input.Completed

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// Delete removes one of the caller's todos. Deleting an already-gone todo
// fails with ErrTodoNotFound.
func (s *TodoService) Delete(identity auth.Identity, id uint64) error {
	if err := s.todoRepo.DeleteByIDAndOwner(id, identity.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// ToggleComplete flips the completed flag of one of the caller's todos.
func (s *TodoService) ToggleComplete(identity auth.Identity, id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(id, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	todo.Completed = !todo.Completed

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

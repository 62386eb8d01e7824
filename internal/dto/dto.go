package dto

import (
	"time"

	"github.com/shirokane/todo-app-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64  `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	IsActive    bool    `json:"is_active"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	AddressID   *uint64 `json:"address_id,omitempty"`
}

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Completed   bool      `json:"completed"`
	OwnerID     uint64    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddressDTO represents an address in API responses
type AddressDTO struct {
	ID         uint64 `json:"id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Postalcode string `json:"postalcode"`
	AptNum     *int   `json:"apt_num,omitempty"`
}

// TodoListResponse represents a paginated list of todos
type TodoListResponse struct {
	Todos      []TodoDTO `json:"todos"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
}

// TransactionResponse is the status envelope the write endpoints answer with.
type TransactionResponse struct {
	Status      int    `json:"status"`
	Transaction string `json:"transaction"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsActive:    user.IsActive,
		PhoneNumber: user.PhoneNumber,
		AddressID:   user.AddressID,
	}
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	return TodoDTO{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Completed:   todo.Completed,
		OwnerID:     todo.OwnerID,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

// ToAddressDTO converts an Address model to AddressDTO
func ToAddressDTO(address models.Address) AddressDTO {
	return AddressDTO{
		ID:         address.ID,
		Address1:   address.Address1,
		Address2:   address.Address2,
		City:       address.City,
		State:      address.State,
		Country:    address.Country,
		Postalcode: address.Postalcode,
		AptNum:     address.AptNum,
	}
}

// ToTodoListResponse converts a slice of todos to TodoListResponse
func ToTodoListResponse(todos []models.Todo, page, pageSize int, totalCount int64) TodoListResponse {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}

	return TodoListResponse{
		Todos:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

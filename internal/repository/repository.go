package repository

import (
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// UpdatePassword replaces a user's stored digest
	UpdatePassword(id uint64, hashedPassword string) error

	// Delete removes a user together with their todos and linked address
	// in a single transaction.
	Delete(id uint64) error
}

// TodoRepository defines the interface for todo data access. Every lookup
// that takes an ownerID filters by it; a row belonging to another owner is
// indistinguishable from an absent one.
type TodoRepository interface {
	// Create creates a new todo
	Create(todo *models.Todo) error

	// FindByIDAndOwner finds a todo by ID scoped to its owner
	FindByIDAndOwner(id, ownerID uint64) (*models.Todo, error)

	// ListByOwner retrieves the owner's todos with pagination
	ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Todo, int64, error)

	// Update persists all mutable fields of a todo
	Update(todo *models.Todo) error

	// DeleteByIDAndOwner deletes a todo scoped to its owner. Returns
	// gorm.ErrRecordNotFound when no owned row matches.
	DeleteByIDAndOwner(id, ownerID uint64) error
}

// AddressRepository defines the interface for address data access
type AddressRepository interface {
	// CreateAndLink creates the address and points the user's address_id
	// at it within one transaction.
	CreateAndLink(address *models.Address, userID uint64) error

	// FindByID finds an address by ID
	FindByID(id uint64) (*models.Address, error)
}

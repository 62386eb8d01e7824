package repository

import (
	"github.com/shirokane/todo-app-api/internal/database"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/utils"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// FindByIDAndOwner finds a todo by ID scoped to its owner
func (r *GormTodoRepository) FindByIDAndOwner(id, ownerID uint64) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByOwner retrieves the owner's todos with pagination
func (r *GormTodoRepository) ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Todo, int64, error) {
	var todos []models.Todo

	query := r.db.Model(&models.Todo{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("todos.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&todos).Error; err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Update persists all mutable fields of a todo
func (r *GormTodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// DeleteByIDAndOwner deletes a todo scoped to its owner
func (r *GormTodoRepository) DeleteByIDAndOwner(id, ownerID uint64) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

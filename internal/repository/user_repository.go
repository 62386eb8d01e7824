package repository

import (
	"errors"
	"fmt"

	"github.com/shirokane/todo-app-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrDeleteTodos is returned when removing the user's todos fails inside the delete transaction.
	ErrDeleteTodos = errors.New("user repository: delete owned todos failed")
	// ErrDeleteAddress is returned when removing the user's linked address fails inside the delete transaction.
	ErrDeleteAddress = errors.New("user repository: delete linked address failed")
	// ErrDeleteUser is returned when removing the user row fails inside the delete transaction.
	ErrDeleteUser = errors.New("user repository: delete user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePassword replaces the stored digest for a user
func (r *GormUserRepository) UpdatePassword(id uint64, hashedPassword string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("hashed_password", hashedPassword).Error
}

// Delete removes the user, their todos, and their linked address atomically.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_id = ?", id).Delete(&models.Todo{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteTodos, err)
		}

		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteUser, err)
		}

		// The address row is only reachable through this user, so it goes too.
		if user.AddressID != nil {
			if err := tx.Delete(&models.Address{}, *user.AddressID).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrDeleteAddress, err)
			}
		}

		return nil
	})
}

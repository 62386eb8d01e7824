package repository

import (
	"errors"
	"fmt"

	"github.com/shirokane/todo-app-api/internal/models"
	"gorm.io/gorm"
)

// GormAddressRepository is a GORM implementation of AddressRepository
type GormAddressRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateAddress is returned when inserting the address fails inside the link transaction.
	ErrCreateAddress = errors.New("address repository: create address failed")
	// ErrLinkAddress is returned when pointing the user at the new address fails inside the link transaction.
	ErrLinkAddress = errors.New("address repository: link address to user failed")
)

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

// CreateAndLink inserts the address and sets the user's address_id in one
// transaction, so a failure between the two steps cannot orphan the row.
func (r *GormAddressRepository) CreateAndLink(address *models.Address, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAddress, err)
		}

		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("address_id", address.ID)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrLinkAddress, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %v", ErrLinkAddress, gorm.ErrRecordNotFound)
		}

		return nil
	})
}

// FindByID finds an address by ID
func (r *GormAddressRepository) FindByID(id uint64) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

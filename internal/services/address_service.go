package services

import (
	"errors"
	"fmt"

	"github.com/shirokane/todo-app-api/internal/auth"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/shirokane/todo-app-api/internal/repository"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressService handles the one-directional user-to-address link.
type AddressService struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo repository.AddressRepository, userRepo repository.UserRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

// CreateAddressInput represents input for creating an address
type CreateAddressInput struct {
	Address1   string
	Address2   string
	City       string
	State      string
	Country    string
	Postalcode string
	AptNum     *int
}

// CreateForUser creates an address and links it to the caller. Both steps
// run in one transaction.
func (s *AddressService) CreateForUser(identity auth.Identity, input CreateAddressInput) (*models.Address, error) {
	address := &models.Address{
		Address1:   input.Address1,
		Address2:   input.Address2,
		City:       input.City,
		State:      input.State,
		Country:    input.Country,
		Postalcode: input.Postalcode,
		AptNum:     input.AptNum,
	}

	if err := s.addressRepo.CreateAndLink(address, identity.UserID); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// GetForUser returns the caller's linked address.
func (s *AddressService) GetForUser(identity auth.Identity) (*models.Address, error) {
	user, err := s.userRepo.FindByID(identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.AddressID == nil {
		return nil, ErrAddressNotFound
	}

	address, err := s.addressRepo.FindByID(*user.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}

	return address, nil
}

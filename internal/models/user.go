package models

import (
	"time"
)

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FirstName      string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100)" json:"last_name"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	PhoneNumber    string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	AddressID      *uint64   `json:"address_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Todos   []Todo   `gorm:"foreignKey:OwnerID" json:"-"`
	Address *Address `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

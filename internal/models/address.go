package models

import (
	"time"
)

// Address is linked one-directionally from User via users.address_id.
type Address struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Address1   string    `gorm:"type:varchar(255);not null" json:"address1"`
	Address2   string    `gorm:"type:varchar(255)" json:"address2"`
	City       string    `gorm:"type:varchar(100)" json:"city"`
	State      string    `gorm:"type:varchar(100)" json:"state"`
	Country    string    `gorm:"type:varchar(100)" json:"country"`
	Postalcode string    `gorm:"type:varchar(20)" json:"postalcode"`
	AptNum     *int      `json:"apt_num,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the original singular table name.
func (Address) TableName() string {
	return "address"
}

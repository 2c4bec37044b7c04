package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"unique;not null;size:80" json:"username"`
	Email        string         `gorm:"unique;not null;size:120" json:"email"`
	PasswordHash string         `gorm:"not null;size:255" json:"-"`
	FirstName    string         `gorm:"size:80" json:"firstName"`
	LastName     string         `gorm:"size:80" json:"lastName"`
	Phone        string         `gorm:"size:30" json:"phone,omitempty"`
	BudgetRange  string         `gorm:"size:50" json:"budgetRange,omitempty"`
	TravelStyle  string         `gorm:"size:50" json:"travelStyle,omitempty"`
	Interests    datatypes.JSON `json:"interests,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	SavedOptions []SavedOption  `gorm:"foreignKey:UserID" json:"saved_options,omitempty"`
}

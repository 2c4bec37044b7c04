package models

import (
	"time"

	"gorm.io/datatypes"
)

// SavedOption is a per-user snapshot of a travel option (flight, hotel or
// activity) the user bookmarked for comparison. One row per (user, option).
type SavedOption struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_saved_options_user_option" json:"user_id"`
	User       *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	OptionID   string         `gorm:"not null;size:80;uniqueIndex:idx_saved_options_user_option" json:"optionId"`
	OptionType string         `gorm:"not null;size:20" json:"optionType"` // flight | hotel | activity
	OptionData datatypes.JSON `gorm:"not null" json:"optionData"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SavedOption) TableName() string {
	return "saved_options"
}

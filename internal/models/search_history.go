package models

import (
	"time"
)

// SearchHistoryEntry records one search submission. Entries are append-only;
// user_id is nullable so history rows can survive schema-level user cleanup.
type SearchHistoryEntry struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      *uint      `gorm:"index" json:"user_id,omitempty"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Destination string     `gorm:"not null;size:255" json:"destination"`
	Checkin     *time.Time `json:"checkin,omitempty"`
	Checkout    *time.Time `json:"checkout,omitempty"`
	Travelers   *int       `json:"travelers,omitempty"`
	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SearchHistoryEntry) TableName() string {
	return "search_history"
}

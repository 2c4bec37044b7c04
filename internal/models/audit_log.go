package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`           // Nullable for failed sign-in attempts
	Action    string    `gorm:"size:50;not null" json:"action"` // e.g., "SIGNIN", "SAVE_OPTION", "UPDATE_PROFILE"
	EntityID  string    `gorm:"size:80" json:"entity_id"`       // ID of the object affected (e.g. option ID or username)
	Details   string    `gorm:"type:text" json:"details"`       // JSON or text description
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Browser   string    `gorm:"size:80" json:"browser"` // Parsed from the User-Agent
	OS        string    `gorm:"size:100" json:"os"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}

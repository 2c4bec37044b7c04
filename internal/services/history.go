package services

import (
	"time"

	"github.com/manideepv28/TravelCompanion/internal/models"

	"gorm.io/gorm"
)

// historyLimit caps how many entries List returns. Older rows stay in storage
// but are never surfaced.
const historyLimit = 10

type SearchDTO struct {
	Destination string
	Checkin     *time.Time
	Checkout    *time.Time
	Travelers   *int
}

type SearchHistoryService struct {
	db *gorm.DB
}

func NewSearchHistoryService(db *gorm.DB) *SearchHistoryService {
	return &SearchHistoryService{db: db}
}

// Append records one search submission. Pure insert; no dedup.
func (s *SearchHistoryService) Append(userID uint, dto SearchDTO) (*models.SearchHistoryEntry, error) {
	entry := models.SearchHistoryEntry{
		UserID:      &userID,
		Destination: dto.Destination,
		Checkin:     dto.Checkin,
		Checkout:    dto.Checkout,
		Travelers:   dto.Travelers,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the caller's most recent searches, newest first, at most 10.
func (s *SearchHistoryService) List(userID uint) ([]models.SearchHistoryEntry, error) {
	var entries []models.SearchHistoryEntry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Limit(historyLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

package services

import (
	"errors"

	"github.com/manideepv28/TravelCompanion/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedOptionService owns the per-user bookmark rows. Every query filters on
// the caller's user ID; callers obtain that ID from the auth middleware, never
// from the request payload.
type SavedOptionService struct {
	db *gorm.DB
}

func NewSavedOptionService(db *gorm.DB) *SavedOptionService {
	return &SavedOptionService{db: db}
}

// List returns the caller's saved options, newest first.
func (s *SavedOptionService) List(userID uint) ([]models.SavedOption, error) {
	var options []models.SavedOption
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// Save upserts on (user_id, option_id): saving the same option twice refreshes
// the snapshot instead of producing a duplicate row. A concurrent first save
// that loses the insert race falls through to the update path.
func (s *SavedOptionService) Save(userID uint, optionID, optionType string, optionData datatypes.JSON) (*models.SavedOption, error) {
	var existing models.SavedOption
	err := s.db.Where("user_id = ? AND option_id = ?", userID, optionID).First(&existing).Error
	if err == nil {
		return s.refresh(&existing, optionType, optionData)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	option := models.SavedOption{
		UserID:     userID,
		OptionID:   optionID,
		OptionType: optionType,
		OptionData: optionData,
	}
	err = s.db.Create(&option).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := s.db.Where("user_id = ? AND option_id = ?", userID, optionID).First(&existing).Error; err != nil {
			return nil, err
		}
		return s.refresh(&existing, optionType, optionData)
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (s *SavedOptionService) refresh(option *models.SavedOption, optionType string, optionData datatypes.JSON) (*models.SavedOption, error) {
	err := s.db.Model(option).Updates(map[string]interface{}{
		"option_type": optionType,
		"option_data": optionData,
	}).Error
	if err != nil {
		return nil, err
	}
	option.OptionType = optionType
	option.OptionData = optionData
	return option, nil
}

// Remove deletes the caller's bookmark for optionID. Deleting a bookmark that
// does not exist succeeds; removal is idempotent.
func (s *SavedOptionService) Remove(userID uint, optionID string) error {
	return s.db.Where("user_id = ? AND option_id = ?", userID, optionID).
		Delete(&models.SavedOption{}).Error
}

// IsSaved reports whether the caller saved optionID. It says nothing about
// other users' bookmarks.
func (s *SavedOptionService) IsSaved(userID uint, optionID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.SavedOption{}).
		Where("user_id = ? AND option_id = ?", userID, optionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

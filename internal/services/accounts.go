package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/manideepv28/TravelCompanion/internal/models"
	"github.com/manideepv28/TravelCompanion/pkg/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RegisterDTO struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type ProfileUpdateDTO struct {
	FirstName   string
	LastName    string
	Phone       *string
	BudgetRange *string
	TravelStyle *string
	Interests   []string
}

type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates a new user with a bcrypt-hashed password. The existence
// check is best effort; the unique constraints are the final arbiter for
// concurrent sign-ups racing on the same username or email.
func (s *AccountService) Register(dto RegisterDTO) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", dto.Username, dto.Email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(dto.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies a username/password pair. Unknown username and wrong
// password both yield ErrInvalidCredentials so the response cannot be used to
// enumerate accounts.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *AccountService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the caller's own record. Username,
// email and password are deliberately not reachable through this path.
func (s *AccountService) UpdateProfile(id uint, dto ProfileUpdateDTO) (*models.User, error) {
	var invalid []string
	if strings.TrimSpace(dto.FirstName) == "" {
		invalid = append(invalid, "firstName")
	}
	if strings.TrimSpace(dto.LastName) == "" {
		invalid = append(invalid, "lastName")
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}

	updates := map[string]interface{}{
		"first_name": strings.TrimSpace(dto.FirstName),
		"last_name":  strings.TrimSpace(dto.LastName),
		"updated_at": time.Now(),
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.BudgetRange != nil {
		updates["budget_range"] = *dto.BudgetRange
	}
	if dto.TravelStyle != nil {
		updates["travel_style"] = *dto.TravelStyle
	}
	if dto.Interests != nil {
		data, err := interestsJSON(dto.Interests)
		if err != nil {
			return nil, err
		}
		updates["interests"] = data
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

func interestsJSON(interests []string) (datatypes.JSON, error) {
	data, err := json.Marshal(interests)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

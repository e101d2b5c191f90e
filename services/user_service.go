package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db: db,
	}
}

// GoogleProfile is the identity payload taken from the OAuth userinfo call.
type GoogleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GetOrCreate returns the account for a Google identity, creating it with
// default ratings on first login. Display data is refreshed from the profile
// on every login so name and photo changes carry over.
func (s *UserService) GetOrCreate(profile *GoogleProfile) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", profile.ID).Error
	if err == nil {
		updates := map[string]interface{}{
			"display_name": profile.Name,
			"email":        profile.Email,
			"photo_url":    profile.Picture,
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:          profile.ID,
		DisplayName: profile.Name,
		Email:       profile.Email,
		PhotoURL:    profile.Picture,
		SoloRating:  models.DefaultRating,
		TeamRating:  models.DefaultRating,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

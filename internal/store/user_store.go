package store

import (
	"errors"

	"github.com/msnknki/Postly/internal/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *UserStore) ByID(id uint) (*models.User, error) {
	return s.one("user_id = ?", id)
}

// ByEmail returns the full record including the password hash, for login.
func (s *UserStore) ByEmail(email string) (*models.User, error) {
	return s.one("email = ?", email)
}

func (s *UserStore) ByUsername(username string) (*models.User, error) {
	return s.one("username = ?", username)
}

// All returns every user, newest first. Password hashes stay out of JSON via
// the model tag.
func (s *UserStore) All() ([]models.User, error) {
	users := []models.User{}
	err := s.db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies a partial update to username/email/password. Role changes go
// through UpdateRole so the enum check cannot be bypassed.
func (s *UserStore) Update(id uint, updates map[string]interface{}) (bool, error) {
	allowed := map[string]bool{"username": true, "email": true, "password": true}
	fields := filterFields(updates, allowed)
	if len(fields) == 0 {
		return false, nil
	}

	result := s.db.Model(&models.User{}).Where("user_id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *UserStore) UpdateRole(id uint, role models.Role) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	result := s.db.Model(&models.User{}).Where("user_id = ?", id).Update("role", role)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *UserStore) Delete(id uint) (bool, error) {
	result := s.db.Where("user_id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Stats splits the user total by role.
func (s *UserStore) Stats() (models.UserStats, error) {
	var stats models.UserStats

	if err := s.db.Model(&models.User{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&stats.Admins).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&stats.Users).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *UserStore) one(query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.Where(query, arg).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

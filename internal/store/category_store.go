package store

import (
	"errors"

	"github.com/msnknki/Postly/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate value")

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(category *models.Category) error {
	err := s.db.Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *CategoryStore) ByID(id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("category_id = ?", id).Take(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// All returns categories sorted by name.
func (s *CategoryStore) All() ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.Order("category_name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Update(id uint, name string) (bool, error) {
	result := s.db.Model(&models.Category{}).
		Where("category_id = ?", id).
		Update("category_name", name)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return false, ErrDuplicate
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the category and clears the reference on any posts that
// used it, so they read back as uncategorized. Both writes commit or roll
// back together.
func (s *CategoryStore) Delete(id uint) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("category_id = ?", id).Delete(&models.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		deleted = true
		// Mirror the MySQL ON DELETE SET NULL behavior on every dialect.
		return tx.Model(&models.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

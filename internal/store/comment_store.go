package store

import (
	"errors"

	"github.com/msnknki/Postly/internal/models"

	"gorm.io/gorm"
)

const commentColumns = `comments.comment_id, comments.post_id, comments.user_id,
	comments.comment, comments.created_at, comments.updated_at,
	users.username AS username`

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Create(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *CommentStore) ByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.joined().Where("comments.comment_id = ?", id).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ByPostID returns a post's comments oldest first.
func (s *CommentStore) ByPostID(postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.joined().
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update replaces the comment body. The ownership constraint is part of the
// statement unless the actor is an admin; success means a row was touched.
func (s *CommentStore) Update(id uint, actorID uint, role models.Role, body string) (bool, error) {
	query := s.db.Model(&models.Comment{}).Where("comment_id = ?", id)
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", actorID)
	}

	result := query.Update("comment", body)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *CommentStore) Delete(id uint, actorID uint, role models.Role) (bool, error) {
	query := s.db.Where("comment_id = ?", id)
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", actorID)
	}

	result := query.Delete(&models.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *CommentStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Comment{}).Count(&total).Error
	return total, err
}

func (s *CommentStore) joined() *gorm.DB {
	return s.db.Model(&models.Comment{}).
		Select(commentColumns).
		Joins("LEFT JOIN users ON comments.user_id = users.user_id")
}

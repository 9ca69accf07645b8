package store

import (
	"errors"
	"strings"

	"github.com/msnknki/Postly/internal/models"

	"gorm.io/gorm"
)

// postColumns are the joined columns every post read returns.
const postColumns = `posts.post_id, posts.user_id, posts.category_id, posts.post_title,
	posts.post_text, posts.cover_url, posts.likes_count, posts.created_at, posts.updated_at,
	users.username AS username, categories.category_name AS category_name,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.post_id) AS comments_count`

// postAllowedFields is the update allow-list; anything else in a partial
// update is dropped before the statement is built.
var postAllowedFields = map[string]bool{
	"post_title":  true,
	"post_text":   true,
	"category_id": true,
	"cover_url":   true,
}

// ListOptions are the composable post listing filters. Offset only applies
// when Limit is set.
type ListOptions struct {
	CategoryID *uint
	Search     string
	Limit      int
	Offset     int
}

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) Create(post *models.Post) error {
	return s.db.Create(post).Error
}

// ByID returns a post with author, category and comment-count information,
// or nil when no such post exists.
func (s *PostStore) ByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.joined().Where("posts.post_id = ?", id).Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest first. Category and search filters compose with
// AND; search is handed to the database's natural-language operator.
func (s *PostStore) List(opts ListOptions) ([]models.Post, error) {
	query := s.joined()

	if opts.CategoryID != nil {
		query = query.Where("posts.category_id = ?", *opts.CategoryID)
	}
	if opts.Search != "" {
		query = s.searchScope(query, opts.Search)
	}

	query = query.Order("posts.created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
		if opts.Offset > 0 {
			query = query.Offset(opts.Offset)
		}
	}

	posts := []models.Post{}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies a partial update restricted to the allow-list. Unless the
// actor is an admin the statement itself is constrained to rows owned by the
// actor, so the ownership check is atomic with the write. Returns false when
// nothing was updated: unknown id, foreign row, or an empty field set.
func (s *PostStore) Update(id uint, actorID uint, role models.Role, updates map[string]interface{}) (bool, error) {
	fields := filterFields(updates, postAllowedFields)
	if len(fields) == 0 {
		return false, nil
	}

	query := s.db.Model(&models.Post{}).Where("post_id = ?", id)
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", actorID)
	}

	result := query.Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a post under the same ownership scoping as Update. A deleted
// post takes its comments with it; both statements commit or roll back
// together.
func (s *PostStore) Delete(id uint, actorID uint, role models.Role) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("post_id = ?", id)
		if role != models.RoleAdmin {
			query = query.Where("user_id = ?", actorID)
		}

		result := query.Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		deleted = true
		return tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// IncrementLikes bumps the counter by one. There is no decrement path.
func (s *PostStore) IncrementLikes(id uint) (bool, error) {
	result := s.db.Model(&models.Post{}).
		Where("post_id = ?", id).
		Update("likes_count", gorm.Expr("likes_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *PostStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Post{}).Count(&total).Error
	return total, err
}

func (s *PostStore) joined() *gorm.DB {
	return s.db.Model(&models.Post{}).
		Select(postColumns).
		Joins("LEFT JOIN users ON posts.user_id = users.user_id").
		Joins("LEFT JOIN categories ON posts.category_id = categories.category_id")
}

// searchScope delegates free text to the engine: MATCH ... AGAINST on MySQL,
// a case-insensitive LIKE over the same columns on the SQLite fallback.
func (s *PostStore) searchScope(query *gorm.DB, search string) *gorm.DB {
	if s.db.Dialector.Name() == "mysql" {
		return query.Where(
			"MATCH(posts.post_title, posts.post_text) AGAINST (? IN NATURAL LANGUAGE MODE)",
			search,
		)
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return query.Where(
		"(LOWER(posts.post_title) LIKE ? OR LOWER(posts.post_text) LIKE ?)",
		pattern, pattern,
	)
}

// filterFields drops keys outside the allow-list. Values pass through as-is;
// a nil pointer value is a deliberate NULL write.
func filterFields(updates map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	fields := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if allowed[key] {
			fields[key] = value
		}
	}
	return fields
}

package models

import "time"

// Role is the access level of a user. Only the two values below are valid;
// anything else is rejected at the boundary.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User model
type User struct {
	ID        uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"size:50;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role      Role      `gorm:"size:10;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Post model. CategoryID is nullable; deleting a category leaves the post
// with a null reference (FK is ON DELETE SET NULL).
type Post struct {
	ID         uint      `gorm:"column:post_id;primaryKey" json:"post_id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	CategoryID *uint     `json:"category_id"`
	Title      string    `gorm:"column:post_title;size:255" json:"post_title"`
	Text       string    `gorm:"column:post_text;type:text" json:"post_text"`
	CoverURL   *string   `gorm:"size:512" json:"cover_url"`
	LikesCount int       `gorm:"default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Read-only join columns filled by the post store.
	Username      string  `gorm:"->;-:migration" json:"username"`
	CategoryName  *string `gorm:"->;-:migration" json:"category_name"`
	CommentsCount int     `gorm:"->;-:migration" json:"comments_count"`
}

// Comment model
type Comment struct {
	ID        uint      `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Comment   string    `gorm:"size:1000" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"->;-:migration" json:"username"`
}

// Category model
type Category struct {
	ID   uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name string `gorm:"column:category_name;size:100;uniqueIndex" json:"category_name"`
}

// Claims carried inside a verified bearer token.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Stats is the admin dashboard aggregate, computed per request.
type Stats struct {
	Users    UserStats  `json:"users"`
	Posts    TotalStats `json:"posts"`
	Comments TotalStats `json:"comments"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
	Users  int64 `json:"users"`
}

type TotalStats struct {
	Total int64 `json:"total"`
}

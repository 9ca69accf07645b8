package store

import (
	"testing"
	"time"

	"github.com/msnknki/Postly/internal/database"
	"github.com/msnknki/Postly/internal/models"

	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db.DB
}

func seedUser(t *testing.T, db *gorm.DB, username, email string, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    email,
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &user
}

func seedPost(t *testing.T, db *gorm.DB, owner *models.User, title, text string) *models.Post {
	t.Helper()
	post := models.Post{
		UserID: owner.ID,
		Title:  title,
		Text:   text,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return &post
}

func TestPostOwnershipScopedUpdate(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)
	bob := seedUser(t, db, "bob", "b@x.com", models.RoleUser)
	admin := seedUser(t, db, "root", "r@x.com", models.RoleAdmin)
	post := seedPost(t, db, alice, "Original", "body")

	posts := NewPostStore(db)

	// A non-owner cannot touch the row even with a valid id.
	ok, err := posts.Update(post.ID, bob.ID, bob.Role, map[string]interface{}{"post_title": "stolen"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("non-owner update must report failure")
	}
	got, _ := posts.ByID(post.ID)
	if got.Title != "Original" {
		t.Fatalf("row changed by non-owner: %q", got.Title)
	}

	// The owner can.
	ok, err = posts.Update(post.ID, alice.ID, alice.Role, map[string]interface{}{"post_title": "Mine"})
	if err != nil || !ok {
		t.Fatalf("owner update failed: ok=%v err=%v", ok, err)
	}
	got, _ = posts.ByID(post.ID)
	if got.Title != "Mine" {
		t.Fatalf("owner update not visible: %q", got.Title)
	}

	// So can an admin who does not own the row.
	ok, err = posts.Update(post.ID, admin.ID, admin.Role, map[string]interface{}{"post_title": "Moderated"})
	if err != nil || !ok {
		t.Fatalf("admin update failed: ok=%v err=%v", ok, err)
	}
}

func TestPostUpdateEmptyFieldSet(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)
	post := seedPost(t, db, alice, "Original", "body")

	posts := NewPostStore(db)

	// Fields outside the allow-list are dropped; nothing left means failure.
	ok, err := posts.Update(post.ID, alice.ID, alice.Role, map[string]interface{}{
		"user_id":     uint(99),
		"likes_count": 1000,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("empty effective field set must report failure")
	}

	got, _ := posts.ByID(post.ID)
	if got.UserID != alice.ID || got.LikesCount != 0 {
		t.Fatalf("disallowed fields leaked into the row: %+v", got)
	}
}

func TestPostUpdateWritesExplicitNull(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)

	categories := NewCategoryStore(db)
	travel := models.Category{Name: "Travel"}
	if err := categories.Create(&travel); err != nil {
		t.Fatalf("category: %v", err)
	}

	cover := "covers/trip.jpg"
	post := models.Post{
		UserID:     alice.ID,
		CategoryID: &travel.ID,
		Title:      "Trip",
		Text:       "body",
		CoverURL:   &cover,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	posts := NewPostStore(db)

	// A key whose value is a nil pointer clears the column.
	ok, err := posts.Update(post.ID, alice.ID, alice.Role, map[string]interface{}{
		"category_id": (*uint)(nil),
		"cover_url":   (*string)(nil),
	})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, _ := posts.ByID(post.ID)
	if got.CategoryID != nil {
		t.Fatalf("category not cleared: %v", *got.CategoryID)
	}
	if got.CoverURL != nil {
		t.Fatalf("cover not cleared: %v", *got.CoverURL)
	}
	if got.Title != "Trip" {
		t.Fatalf("untouched column changed: %q", got.Title)
	}
}

func TestPostOwnershipScopedDelete(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)
	bob := seedUser(t, db, "bob", "b@x.com", models.RoleUser)
	post := seedPost(t, db, alice, "Keep", "body")

	posts := NewPostStore(db)
	comments := NewCommentStore(db)
	comment := models.Comment{PostID: post.ID, UserID: bob.ID, Comment: "hello"}
	if err := comments.Create(&comment); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if ok, _ := posts.Delete(post.ID, bob.ID, bob.Role); ok {
		t.Fatal("non-owner delete must report failure")
	}
	if ok, _ := posts.Delete(post.ID, alice.ID, alice.Role); !ok {
		t.Fatal("owner delete must succeed")
	}
	// Second delete is a natural no-op.
	if ok, _ := posts.Delete(post.ID, alice.ID, alice.Role); ok {
		t.Fatal("second delete must report failure")
	}
	// The post takes its comments with it.
	if got, _ := comments.ByID(comment.ID); got != nil {
		t.Fatal("comments must not survive their post")
	}
}

func TestPostListFiltersAndOrder(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)

	categories := NewCategoryStore(db)
	travel := models.Category{Name: "Travel"}
	food := models.Category{Name: "Food"}
	if err := categories.Create(&travel); err != nil {
		t.Fatalf("category: %v", err)
	}
	if err := categories.Create(&food); err != nil {
		t.Fatalf("category: %v", err)
	}

	posts := NewPostStore(db)
	base := time.Now().Add(-time.Hour)
	rows := []models.Post{
		{UserID: alice.ID, CategoryID: &travel.ID, Title: "Hiking in Norway", Text: "fjords", CreatedAt: base},
		{UserID: alice.ID, CategoryID: &travel.ID, Title: "City guide", Text: "museums and parks", CreatedAt: base.Add(time.Minute)},
		{UserID: alice.ID, CategoryID: &food.ID, Title: "Pasta night", Text: "recipes", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// Category filter.
	got, err := posts.List(ListOptions{CategoryID: &travel.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 travel posts, got %d", len(got))
	}

	// Search composes with the category filter via AND.
	got, err = posts.List(ListOptions{CategoryID: &travel.ID, Search: "fjords"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Hiking in Norway" {
		t.Fatalf("search+category filter wrong: %+v", got)
	}

	// Newest first, always.
	got, err = posts.List(ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("posts not ordered newest first at index %d", i)
		}
	}

	// Pagination.
	got, err = posts.List(ListOptions{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "City guide" {
		t.Fatalf("pagination wrong: %+v", got)
	}
}

func TestPostLikesIncrementOnly(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)
	post := seedPost(t, db, alice, "Likeable", "body")

	posts := NewPostStore(db)
	for i := 0; i < 3; i++ {
		if ok, err := posts.IncrementLikes(post.ID); err != nil || !ok {
			t.Fatalf("increment %d: ok=%v err=%v", i, ok, err)
		}
	}

	got, _ := posts.ByID(post.ID)
	if got.LikesCount != 3 {
		t.Fatalf("expected 3 likes, got %d", got.LikesCount)
	}

	if ok, _ := posts.IncrementLikes(9999); ok {
		t.Fatal("liking a missing post must report failure")
	}
}

func TestCommentOwnershipScopedMutation(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)
	bob := seedUser(t, db, "bob", "b@x.com", models.RoleUser)
	admin := seedUser(t, db, "root", "r@x.com", models.RoleAdmin)
	post := seedPost(t, db, alice, "Post", "body")

	comments := NewCommentStore(db)
	comment := models.Comment{PostID: post.ID, UserID: bob.ID, Comment: "original"}
	if err := comments.Create(&comment); err != nil {
		t.Fatalf("create: %v", err)
	}

	if ok, _ := comments.Update(comment.ID, alice.ID, alice.Role, "hijacked"); ok {
		t.Fatal("non-owner comment update must report failure")
	}
	if ok, _ := comments.Update(comment.ID, bob.ID, bob.Role, "edited"); !ok {
		t.Fatal("owner comment update must succeed")
	}
	if ok, _ := comments.Update(comment.ID, admin.ID, admin.Role, "moderated"); !ok {
		t.Fatal("admin comment update must succeed")
	}
	if ok, _ := comments.Delete(comment.ID, alice.ID, alice.Role); ok {
		t.Fatal("non-owner comment delete must report failure")
	}
	if ok, _ := comments.Delete(comment.ID, admin.ID, admin.Role); !ok {
		t.Fatal("admin comment delete must succeed")
	}
}

func TestCategoryDeleteLeavesPostsUncategorized(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "alice", "a@x.com", models.RoleUser)

	categories := NewCategoryStore(db)
	travel := models.Category{Name: "Travel"}
	if err := categories.Create(&travel); err != nil {
		t.Fatalf("category: %v", err)
	}

	post := models.Post{UserID: alice.ID, CategoryID: &travel.ID, Title: "Trip", Text: "body"}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if ok, err := categories.Delete(travel.ID); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}

	got, _ := NewPostStore(db).ByID(post.ID)
	if got == nil {
		t.Fatal("post must survive category deletion")
	}
	if got.CategoryID != nil {
		t.Fatalf("category reference not cleared: %v", *got.CategoryID)
	}
}

func TestCategoryDuplicateName(t *testing.T) {
	db := setupDB(t)
	categories := NewCategoryStore(db)

	if err := categories.Create(&models.Category{Name: "Travel"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := categories.Create(&models.Category{Name: "Travel"})
	if err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/msnknki/Postly/internal/middleware"
	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *store.PostStore
}

func NewPostHandler(posts *store.PostStore) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	opts := store.ListOptions{
		Search: c.Query("search"),
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid category ID.")
			return
		}
		categoryID := uint(id)
		opts.CategoryID = &categoryID
	}
	if raw := c.Query("limit"); raw != "" {
		opts.Limit, _ = strconv.Atoi(raw)
	}
	if raw := c.Query("offset"); raw != "" {
		opts.Offset, _ = strconv.Atoi(raw)
	}

	posts, err := h.posts.List(opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching posts.")
		return
	}

	respondList(c, gin.H{"posts": posts}, len(posts))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching post.")
		return
	}
	if post == nil {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	respondData(c, http.StatusOK, "", gin.H{"post": post})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	var req struct {
		Title      string  `json:"post_title"`
		Text       string  `json:"post_text"`
		CategoryID *uint   `json:"category_id"`
		CoverURL   *string `json:"cover_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Text == "" {
		respondError(c, http.StatusBadRequest, "Post title and text are required.")
		return
	}
	if len(req.Title) > 255 {
		respondError(c, http.StatusBadRequest, "Post title must be 255 characters or less.")
		return
	}

	post := models.Post{
		UserID:     claims.UserID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Text:       req.Text,
		CoverURL:   req.CoverURL,
	}
	if err := h.posts.Create(&post); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while creating post.")
		return
	}

	created, err := h.posts.ByID(post.ID)
	if err != nil || created == nil {
		respondError(c, http.StatusInternalServerError, "Server error while creating post.")
		return
	}

	respondData(c, http.StatusCreated, "Post created successfully.", gin.H{"post": created})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.CurrentUser(c)

	// An absent key leaves the column alone; a key set to null clears it.
	// Binding straight into pointer fields would conflate the two.
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updates := map[string]interface{}{}

	if v, ok := raw["post_title"]; ok {
		var title *string
		if err := json.Unmarshal(v, &title); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if title != nil && len(*title) > 255 {
			respondError(c, http.StatusBadRequest, "Post title must be 255 characters or less.")
			return
		}
		updates["post_title"] = title
	}
	if v, ok := raw["post_text"]; ok {
		var text *string
		if err := json.Unmarshal(v, &text); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		updates["post_text"] = text
	}
	if v, ok := raw["category_id"]; ok {
		var categoryID *uint
		if err := json.Unmarshal(v, &categoryID); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		updates["category_id"] = categoryID
	}
	if v, ok := raw["cover_url"]; ok {
		var coverURL *string
		if err := json.Unmarshal(v, &coverURL); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		updates["cover_url"] = coverURL
	}

	updated, err := h.posts.Update(id, claims.UserID, claims.Role, updates)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating post.")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Post not found or you do not have permission to update it.")
		return
	}

	post, err := h.posts.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating post.")
		return
	}

	respondData(c, http.StatusOK, "Post updated successfully.", gin.H{"post": post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.CurrentUser(c)

	deleted, err := h.posts.Delete(id, claims.UserID, claims.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting post.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Post not found or you do not have permission to delete it.")
		return
	}

	respondData(c, http.StatusOK, "Post deleted successfully.", nil)
}

// LikePost bumps the like counter. Likes only go up; there is no unlike.
func (h *PostHandler) LikePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	liked, err := h.posts.IncrementLikes(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while liking post.")
		return
	}
	if !liked {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	post, err := h.posts.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while liking post.")
		return
	}

	respondData(c, http.StatusOK, "Post liked.", gin.H{"post": post})
}

package handlers

import (
	"net/http"

	"github.com/msnknki/Postly/internal/middleware"
	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/store"
	"github.com/msnknki/Postly/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation surface. Ownership scoping does not
// apply here; the admin gate is the only guard.
type AdminHandler struct {
	users    *store.UserStore
	posts    *store.PostStore
	comments *store.CommentStore
}

func NewAdminHandler(users *store.UserStore, posts *store.PostStore, comments *store.CommentStore) *AdminHandler {
	return &AdminHandler{
		users:    users,
		posts:    posts,
		comments: comments,
	}
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.users.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching users.")
		return
	}

	respondList(c, gin.H{"users": users}, len(users))
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching user.")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	respondData(c, http.StatusOK, "", gin.H{"user": user})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.users.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating user.")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	updates := map[string]interface{}{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Server error while updating user.")
			return
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		updated, err := h.users.Update(id, updates)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Server error while updating user.")
			return
		}
		if !updated {
			respondError(c, http.StatusBadRequest, "Failed to update user.")
			return
		}
	}

	// Role changes outside {user, admin} are ignored at the boundary.
	if role := models.Role(req.Role); role.Valid() {
		if _, err := h.users.UpdateRole(id, role); err != nil {
			respondError(c, http.StatusInternalServerError, "Server error while updating user.")
			return
		}
	}

	user, err = h.users.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating user.")
		return
	}

	respondData(c, http.StatusOK, "User updated successfully.", gin.H{"user": user})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	// The one identity special case in the system: admins cannot remove
	// their own account.
	claims := middleware.CurrentUser(c)
	if id == claims.UserID {
		respondError(c, http.StatusBadRequest, "You cannot delete your own account.")
		return
	}

	deleted, err := h.users.Delete(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting user.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	respondData(c, http.StatusOK, "User deleted successfully.", nil)
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.posts.Delete(id, 0, models.RoleAdmin)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting post.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	respondData(c, http.StatusOK, "Post deleted successfully.", nil)
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.comments.Delete(id, 0, models.RoleAdmin)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting comment.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Comment not found.")
		return
	}

	respondData(c, http.StatusOK, "Comment deleted successfully.", nil)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	userStats, err := h.users.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching statistics.")
		return
	}
	postTotal, err := h.posts.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching statistics.")
		return
	}
	commentTotal, err := h.comments.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching statistics.")
		return
	}

	stats := models.Stats{
		Users:    userStats,
		Posts:    models.TotalStats{Total: postTotal},
		Comments: models.TotalStats{Total: commentTotal},
	}

	respondData(c, http.StatusOK, "", gin.H{
		"users":    stats.Users,
		"posts":    stats.Posts,
		"comments": stats.Comments,
	})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/msnknki/Postly/internal/middleware"
	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *store.CommentStore
	posts    *store.PostStore
}

func NewCommentHandler(comments *store.CommentStore, posts *store.PostStore) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		posts:    posts,
	}
}

func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}

	post, err := h.posts.ByID(postID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching comments.")
		return
	}
	if post == nil {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	comments, err := h.comments.ByPostID(postID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching comments.")
		return
	}

	respondList(c, gin.H{"comments": comments}, len(comments))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := paramID(c, "postId")
	if !ok {
		return
	}
	claims := middleware.CurrentUser(c)

	body, ok := bindCommentBody(c)
	if !ok {
		return
	}

	post, err := h.posts.ByID(postID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while adding comment.")
		return
	}
	if post == nil {
		respondError(c, http.StatusNotFound, "Post not found.")
		return
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  claims.UserID,
		Comment: body,
	}
	if err := h.comments.Create(&comment); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while adding comment.")
		return
	}

	created, err := h.comments.ByID(comment.ID)
	if err != nil || created == nil {
		respondError(c, http.StatusInternalServerError, "Server error while adding comment.")
		return
	}

	respondData(c, http.StatusCreated, "Comment added successfully.", gin.H{"comment": created})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.CurrentUser(c)

	body, ok := bindCommentBody(c)
	if !ok {
		return
	}

	updated, err := h.comments.Update(id, claims.UserID, claims.Role, body)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating comment.")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Comment not found or you do not have permission to update it.")
		return
	}

	comment, err := h.comments.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating comment.")
		return
	}

	respondData(c, http.StatusOK, "Comment updated successfully.", gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := middleware.CurrentUser(c)

	deleted, err := h.comments.Delete(id, claims.UserID, claims.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting comment.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Comment not found or you do not have permission to delete it.")
		return
	}

	respondData(c, http.StatusOK, "Comment deleted successfully.", nil)
}

func bindCommentBody(c *gin.Context) (string, bool) {
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Comment) == "" {
		respondError(c, http.StatusBadRequest, "Comment text is required.")
		return "", false
	}
	if len(req.Comment) > 1000 {
		respondError(c, http.StatusBadRequest, "Comment must be 1000 characters or less.")
		return "", false
	}
	return req.Comment, true
}

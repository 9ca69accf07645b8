package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/store"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *store.CategoryStore
}

func NewCategoryHandler(categories *store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching categories.")
		return
	}

	respondList(c, gin.H{"categories": categories}, len(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching category.")
		return
	}
	if category == nil {
		respondError(c, http.StatusNotFound, "Category not found.")
		return
	}

	respondData(c, http.StatusOK, "", gin.H{"category": category})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	name, ok := bindCategoryName(c)
	if !ok {
		return
	}

	category := models.Category{Name: name}
	err := h.categories.Create(&category)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(c, http.StatusBadRequest, "Category name already exists.")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while creating category.")
		return
	}

	respondData(c, http.StatusCreated, "Category created successfully.", gin.H{"category": category})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	name, ok := bindCategoryName(c)
	if !ok {
		return
	}

	updated, err := h.categories.Update(id, name)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(c, http.StatusBadRequest, "Category name already exists.")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating category.")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Category not found.")
		return
	}

	category, err := h.categories.ByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while updating category.")
		return
	}

	respondData(c, http.StatusOK, "Category updated successfully.", gin.H{"category": category})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.categories.Delete(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while deleting category.")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Category not found.")
		return
	}

	respondData(c, http.StatusOK, "Category deleted successfully.", nil)
}

func bindCategoryName(c *gin.Context) (string, bool) {
	var req struct {
		Name string `json:"category_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "Category name is required.")
		return "", false
	}
	return strings.TrimSpace(req.Name), true
}

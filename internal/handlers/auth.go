package handlers

import (
	"net/http"
	"strings"

	"github.com/msnknki/Postly/internal/middleware"
	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/services"
	"github.com/msnknki/Postly/internal/store"
	"github.com/msnknki/Postly/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users        *store.UserStore
	tokenService *services.TokenService
}

func NewAuthHandler(users *store.UserStore, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		users:        users,
		tokenService: tokenService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "All fields (username, email, password) are required.")
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if !utils.IsValidUsername(username) {
		respondError(c, http.StatusBadRequest,
			"Name must be 3-50 characters and contain only letters, numbers, spaces, hyphens, and apostrophes.")
		return
	}
	if !utils.IsValidEmail(email) {
		respondError(c, http.StatusBadRequest, "Invalid email format.")
		return
	}
	if !utils.IsValidPassword(req.Password) {
		respondError(c, http.StatusBadRequest, "Password must be at least 6 characters long.")
		return
	}

	// Email first, then username; each conflict has its own message.
	existing, err := h.users.ByEmail(email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration.")
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Email already registered.")
		return
	}

	existing, err = h.users.ByUsername(username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration.")
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Username already taken.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := h.users.Create(&user); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	token, err := h.tokenService.Generate(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	respondData(c, http.StatusCreated, "User registered successfully.", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.users.ByEmail(req.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during login.")
		return
	}

	// One message for both failure modes; never say which field was wrong.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	token, err := h.tokenService.Generate(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during login.")
		return
	}

	respondData(c, http.StatusOK, "Login successful.", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	user, err := h.users.ByID(claims.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	respondData(c, http.StatusOK, "", gin.H{"user": user})
}

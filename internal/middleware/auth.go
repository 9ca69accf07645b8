package middleware

import (
	"net/http"
	"strings"

	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/services"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is where the auth gate stores the verified claims on the context.
const ClaimsKey = "claims"

// AuthRequired verifies the bearer token and attaches the claims. Missing
// token short-circuits 401, a bad or expired one 403; the handler never runs.
func AuthRequired(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided.",
			})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokenService.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Invalid or expired token.",
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// AdminOnly requires a verified admin claim. Must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied. Admin privileges required.",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the verified claims set by AuthRequired, or nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *models.Claims {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}

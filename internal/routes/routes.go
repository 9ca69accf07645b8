package routes

import (
	"net/http"
	"time"

	"github.com/msnknki/Postly/internal/config"
	"github.com/msnknki/Postly/internal/handlers"
	"github.com/msnknki/Postly/internal/middleware"
	"github.com/msnknki/Postly/internal/services"
	"github.com/msnknki/Postly/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Services and stores
	tokenService := services.NewTokenService(cfg)
	users := store.NewUserStore(db)
	posts := store.NewPostStore(db)
	comments := store.NewCommentStore(db)
	categories := store.NewCategoryStore(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(users, tokenService)
	postHandler := handlers.NewPostHandler(posts)
	commentHandler := handlers.NewCommentHandler(comments, posts)
	categoryHandler := handlers.NewCategoryHandler(categories)
	adminHandler := handlers.NewAdminHandler(users, posts, comments)

	authRequired := middleware.AuthRequired(tokenService)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Postly API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", postHandler.GetPosts)
		postGroup.GET("/:id", postHandler.GetPost)
		postGroup.POST("", authRequired, postHandler.CreatePost)
		postGroup.PUT("/:id", authRequired, postHandler.UpdatePost)
		postGroup.DELETE("/:id", authRequired, postHandler.DeletePost)
		postGroup.POST("/:id/like", authRequired, postHandler.LikePost)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", categoryHandler.GetCategories)
		categoryGroup.GET("/:id", categoryHandler.GetCategory)
		categoryGroup.POST("", authRequired, middleware.AdminOnly(), categoryHandler.CreateCategory)
		categoryGroup.PUT("/:id", authRequired, middleware.AdminOnly(), categoryHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", authRequired, middleware.AdminOnly(), categoryHandler.DeleteCategory)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("/posts/:postId/comments", commentHandler.GetCommentsByPost)
		commentGroup.POST("/posts/:postId/comments", authRequired, commentHandler.CreateComment)
		commentGroup.PUT("/:id", authRequired, commentHandler.UpdateComment)
		commentGroup.DELETE("/:id", authRequired, commentHandler.DeleteComment)
	}

	admin := api.Group("/admin", authRequired, middleware.AdminOnly())
	{
		admin.GET("/users", adminHandler.GetUsers)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
		admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		admin.GET("/stats", adminHandler.GetStats)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoblog-backend/internal/shared/middleware"
	"photoblog-backend/internal/shared/response"
	"photoblog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupImageRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupCategoryRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Register runs under OptionalAuth: the voter rejects registration
	// from an already authenticated session.
	auth := v1.Group("/auth")
	auth.Use(middleware.OptionalAuth(c.JWTManager))
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")

	public := users.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("/:id", c.UserHandler.Get)
		public.GET("/:id/profile", c.UserHandler.GetProfile)
	}

	private := users.Group("")
	private.Use(middleware.Auth(c.JWTManager))
	{
		private.PATCH("/:id", c.UserHandler.Update)
		private.DELETE("/:id", c.UserHandler.Delete)
		private.POST("/password", c.UserHandler.ChangePassword)
		private.PATCH("/:id/profile", c.UserHandler.UpdateProfile)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")

	// Reads are public; the actor still matters because admins see drafts.
	public := posts.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("", c.PostHandler.List)
		public.GET("/:id", c.PostHandler.Get)
		public.GET("/slug/:slug", c.PostHandler.GetBySlug)
		public.GET("/:id/comments", c.CommentHandler.ListOnPost)
	}

	private := posts.Group("")
	private.Use(middleware.Auth(c.JWTManager))
	{
		private.GET("/export", middleware.RequireAdmin(), c.PostHandler.Export)
		private.POST("", c.PostHandler.Create)
		private.PATCH("/:id", c.PostHandler.Update)
		private.DELETE("/:id", c.PostHandler.Destroy)
		private.POST("/:id/publish", c.PostHandler.Publish)
		private.POST("/:id/unpublish", c.PostHandler.Unpublish)
		private.POST("/:id/trash", c.PostHandler.Trash)
		private.POST("/:id/restore", c.PostHandler.Restore)
		private.POST("/:id/like", c.PostHandler.Like)
		private.DELETE("/:id/like", c.PostHandler.Unlike)
		private.POST("/comments", c.CommentHandler.CreateOnPost)
	}
}

// ========================================
// IMAGE ROUTES
// ========================================
func setupImageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	images := v1.Group("/images")

	public := images.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("", c.ImageHandler.List)
		public.GET("/:id", c.ImageHandler.Get)
		public.GET("/:id/comments", c.CommentHandler.ListOnImage)
	}

	private := images.Group("")
	private.Use(middleware.Auth(c.JWTManager))
	{
		private.POST("", c.ImageHandler.Upload)
		private.PATCH("/:id", c.ImageHandler.Update)
		private.DELETE("/:id", c.ImageHandler.Destroy)
		private.POST("/:id/publish", c.ImageHandler.Publish)
		private.POST("/:id/unpublish", c.ImageHandler.Unpublish)
		private.POST("/:id/trash", c.ImageHandler.Trash)
		private.POST("/:id/restore", c.ImageHandler.Restore)
		private.POST("/:id/like", c.ImageHandler.Like)
		private.DELETE("/:id/like", c.ImageHandler.Unlike)
		private.POST("/comments", c.CommentHandler.CreateOnImage)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")

	public := comments.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("/:id", c.CommentHandler.Get)
	}

	private := comments.Group("")
	private.Use(middleware.Auth(c.JWTManager))
	{
		private.PATCH("/:id", c.CommentHandler.Update)
		private.DELETE("/:id", c.CommentHandler.Delete)
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")

	public := tags.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("", c.TagHandler.List)
		public.GET("/:id", c.TagHandler.Get)
		public.GET("/slug/:slug", c.TagHandler.GetBySlug)
		public.GET("/:id/membership", c.TagHandler.Membership)
	}

	private := tags.Group("")
	private.Use(middleware.Auth(c.JWTManager), middleware.RequireAdmin())
	{
		private.POST("", c.TagHandler.Create)
		private.PATCH("/:id", c.TagHandler.Update)
		private.DELETE("/:id", c.TagHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")

	public := categories.Group("")
	public.Use(middleware.OptionalAuth(c.JWTManager))
	{
		public.GET("/:kind", c.CategoryHandler.List)
		public.GET("/:kind/:id", c.CategoryHandler.Get)
	}

	private := categories.Group("")
	private.Use(middleware.Auth(c.JWTManager), middleware.RequireAdmin())
	{
		private.POST("/:kind", c.CategoryHandler.Create)
		private.PATCH("/:kind/:id", c.CategoryHandler.Update)
		private.DELETE("/:kind/:id", c.CategoryHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "up",
			"cache":    "up",
		}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = "down"
		}

		response.Success(ctx, status, gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}

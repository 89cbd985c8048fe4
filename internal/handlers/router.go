package handlers

import (
	"github.com/wasishah33/Subscene-Clone/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", h.RegisterUser)
	api.POST("/auth/login", h.LoginUser)
	api.POST("/auth/logout", h.LogoutUser)
	api.GET("/auth/user", h.RequireAuth(), h.CurrentUser)

	// Catalog (public, identity attached when a valid token rides along)
	api.GET("/subtitles", h.OptionalAuth(), h.SearchSubtitles)
	api.GET("/subtitles/:id", h.OptionalAuth(), h.GetSubtitle)
	api.GET("/subtitles/:id/metadata", h.GetSubtitleMetadata)
	api.GET("/languages", h.ListLanguages)

	// Uploads
	authorized := api.Group("/")
	authorized.Use(h.RequireAuth())
	{
		authorized.POST("/subtitles/upload", h.UploadSubtitle)
		authorized.GET("/uploads", h.ListMyUploads)
		authorized.DELETE("/uploads/:id", h.DeleteUpload)
	}
	api.POST("/uploads/:id/download", h.CountDownload)

	// Movie metadata
	api.GET("/movies/latest", h.LatestMovies)
	api.GET("/tmdb-proxy", h.TMDBProxy)

	return r
}

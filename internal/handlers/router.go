package handlers

import (
	"github.com/manideepv28/TravelCompanion/internal/services"

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

	// Public Routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/signout", h.SignOut)
		auth.GET("/user", h.AuthRequired(), h.CurrentUser)
	}

	// Protected Routes
	api := r.Group("/api")
	api.Use(h.AuthRequired())
	{
		api.PATCH("/user/profile", h.UpdateProfile)
		api.GET("/saved-options", h.ListSavedOptions)
		api.POST("/saved-options", h.SaveOption)
		api.DELETE("/saved-options/:optionId", h.RemoveSavedOption)
		api.GET("/saved-options/:optionId/check", h.CheckSavedOption)
		api.GET("/search-history", h.ListSearchHistory)
		api.POST("/search-history", h.AppendSearchHistory)
	}

	return r
}

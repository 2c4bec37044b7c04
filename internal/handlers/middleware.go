package handlers

import (
	"net/http"

	"github.com/manideepv28/TravelCompanion/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "travel_session"

// AuthRequired rejects any request without a valid session before the handler
// runs. On success the resolved user ID is attached to the context; handlers
// must take the caller's identity from there and nowhere else.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userID, ok := h.sessions.Resolve(c.Request.Context(), token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// currentUserID returns the identity attached by AuthRequired.
func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := val.(uint)
	return userID, ok
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.cfg.AppEnv == "production"
	c.SetCookie(sessionCookieName, token, int(services.SessionTTL.Seconds()), "/", "", secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := h.cfg.AppEnv == "production"
	c.SetCookie(sessionCookieName, "", -1, "/", "", secure, true)
}

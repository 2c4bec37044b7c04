package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manideepv28/TravelCompanion/internal/models"
	"github.com/manideepv28/TravelCompanion/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestMiddlewares(t *testing.T) {
	h, db, sessions := setupTestHandler()
	r := setupTestRouter(h)

	r.GET("/protected", h.AuthRequired(), func(c *gin.Context) {
		c.Status(200)
	})

	t.Run("AuthRequired - no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AuthRequired - bogus token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Cookie", sessionCookieName+"=not-a-real-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AuthRequired - valid session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Cookie", sessionCookie(sessions, 99))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("AuthRequired - expired session", func(t *testing.T) {
		store := services.NewMemorySessionStore()
		store.Set(context.Background(), "stale", 5, -time.Minute)
		expiredSessions := services.NewSessionService(store, h.logger)

		h2 := NewHandler(h.cfg, h.logger, expiredSessions, h.accounts, h.options, h.history, h.audit)
		r2 := setupTestRouter(h2)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/saved-options", nil)
		req.Header.Set("Cookie", sessionCookieName+"=stale")
		r2.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unauthorized request causes zero writes", func(t *testing.T) {
		body := []byte(`{"optionId":"flight1","optionType":"flight","optionData":{"price":100}}`)
		req, _ := http.NewRequest("POST", "/api/saved-options", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var count int64
		db.Model(&models.SavedOption{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("RateLimitMiddleware", func(t *testing.T) {
		limiter := services.NewIPRateLimiter(rate.Limit(1), 1, h.logger)
		r.GET("/limited", h.RateLimitMiddleware(limiter), func(c *gin.Context) {
			c.Status(200)
		})

		// First request allowed
		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		// Second request blocked
		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	})
}

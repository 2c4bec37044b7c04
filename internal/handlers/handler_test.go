package handlers

import (
	"context"
	"log/slog"
	"os"

	"github.com/manideepv28/TravelCompanion/internal/config"
	"github.com/manideepv28/TravelCompanion/internal/models"
	"github.com/manideepv28/TravelCompanion/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB, *services.SessionService) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.SavedOption{}, &models.SearchHistoryEntry{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{AppEnv: "local"}

	sessions := services.NewSessionService(services.NewMemorySessionStore(), logger)
	accounts := services.NewAccountService(db)
	options := services.NewSavedOptionService(db)
	history := services.NewSearchHistoryService(db)
	audit := services.NewAuditService(db, logger)

	h := NewHandler(cfg, logger, sessions, accounts, options, history, audit)
	return h, db, sessions
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

// sessionCookie mints a live session for userID and returns the cookie header value.
func sessionCookie(sessions *services.SessionService, userID uint) string {
	token, _ := sessions.Create(context.Background(), userID)
	return sessionCookieName + "=" + token
}

package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/manideepv28/TravelCompanion/internal/models"

	"github.com/mssola/user_agent"
	"gorm.io/gorm"
)

// AuditService records account and bookmark activity asynchronously so
// request handling never waits on the audit table.
type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.entries:
			s.enrich(&entry)
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

// LogAction queues an audit entry. Drops the entry when the buffer is full
// rather than blocking the request.
func (s *AuditService) LogAction(userID *uint, action, entityID string, details interface{}, ip, rawUserAgent string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Browser:   rawUserAgent, // raw until the worker parses it
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}

func (s *AuditService) enrich(entry *models.AuditLog) {
	if entry.Browser == "" {
		return
	}
	ua := user_agent.New(entry.Browser)
	name, version := ua.Browser()
	entry.Browser = name + " " + version
	entry.OS = ua.OS()
}

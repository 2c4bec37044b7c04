package handlers

import (
	"log/slog"

	"github.com/manideepv28/TravelCompanion/internal/config"
	"github.com/manideepv28/TravelCompanion/internal/services"
)

type Handler struct {
	cfg      config.Config
	logger   *slog.Logger
	sessions *services.SessionService
	accounts *services.AccountService
	options  *services.SavedOptionService
	history  *services.SearchHistoryService
	audit    *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	sessions *services.SessionService,
	accounts *services.AccountService,
	options *services.SavedOptionService,
	history *services.SearchHistoryService,
	audit *services.AuditService,
) *Handler {
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		accounts: accounts,
		options:  options,
		history:  history,
		audit:    audit,
	}
}

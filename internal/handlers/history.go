package handlers

import (
	"net/http"
	"time"

	"github.com/manideepv28/TravelCompanion/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHistoryRequest struct {
	Destination string     `json:"destination" binding:"required"`
	Checkin     *time.Time `json:"checkin"`
	Checkout    *time.Time `json:"checkout"`
	Travelers   *int       `json:"travelers" binding:"omitempty,min=1"`
}

func (h *Handler) ListSearchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.history.List(userID)
	if err != nil {
		h.logger.Error("Failed to list search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch search history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) AppendSearchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SearchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.history.Append(userID, services.SearchDTO{
		Destination: req.Destination,
		Checkin:     req.Checkin,
		Checkout:    req.Checkout,
		Travelers:   req.Travelers,
	})
	if err != nil {
		h.logger.Error("Failed to save search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save search history"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

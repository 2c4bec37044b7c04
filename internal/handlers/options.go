package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SaveOptionRequest struct {
	OptionID   string          `json:"optionId" binding:"required"`
	OptionType string          `json:"optionType" binding:"required,oneof=flight hotel activity"`
	OptionData json.RawMessage `json:"optionData" binding:"required"`
}

func (h *Handler) ListSavedOptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	options, err := h.options.List(userID)
	if err != nil {
		h.logger.Error("Failed to list saved options", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved options"})
		return
	}

	c.JSON(http.StatusOK, options)
}

func (h *Handler) SaveOption(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SaveOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	option, err := h.options.Save(userID, req.OptionID, req.OptionType, datatypes.JSON(req.OptionData))
	if err != nil {
		h.logger.Error("Failed to save option", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save option"})
		return
	}

	h.audit.LogAction(&userID, "SAVE_OPTION", req.OptionID, map[string]string{
		"option_type": req.OptionType,
	}, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusCreated, option)
}

func (h *Handler) RemoveSavedOption(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	optionID := c.Param("optionId")
	if err := h.options.Remove(userID, optionID); err != nil {
		h.logger.Error("Failed to remove saved option", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove option"})
		return
	}

	h.audit.LogAction(&userID, "REMOVE_OPTION", optionID, nil, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) CheckSavedOption(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.options.IsSaved(userID, c.Param("optionId"))
	if err != nil {
		h.logger.Error("Failed to check saved option", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check option"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSaved": saved})
}

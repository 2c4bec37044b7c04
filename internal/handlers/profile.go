package handlers

import (
	"errors"
	"net/http"

	"github.com/manideepv28/TravelCompanion/internal/services"

	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Phone       *string  `json:"phone"`
	BudgetRange *string  `json:"budgetRange"`
	TravelStyle *string  `json:"travelStyle"`
	Interests   []string `json:"interests"`
}

// UpdateProfile applies a partial update to the caller's own record. There is
// no field for username, email or password on purpose.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.UpdateProfile(userID, services.ProfileUpdateDTO{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		BudgetRange: req.BudgetRange,
		TravelStyle: req.TravelStyle,
		Interests:   req.Interests,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "fields": vErr.Fields})
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("Failed to update profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	h.audit.LogAction(&userID, "UPDATE_PROFILE", user.Username, nil, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, user)
}

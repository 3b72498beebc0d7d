package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	"github.com/abhishek-0203/neural-thread-couture/internal/stylist"
)

// StylistHandler is the request/reply variant of the AI stylist: full
// history in, complete answer out, no streaming.
type StylistHandler struct {
	db     *gorm.DB
	client *stylist.Client
}

func NewStylistHandler(db *gorm.DB, client *stylist.Client) *StylistHandler {
	return &StylistHandler{db: db, client: client}
}

type stylistChatRequest struct {
	Message             string         `json:"message" binding:"required"`
	ConversationHistory []stylist.Turn `json:"conversation_history"`
}

func (h *StylistHandler) Chat(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req stylistChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found.")
		return
	}

	answer, usage, err := h.client.Complete(
		c.Request.Context(),
		&profile,
		req.ConversationHistory,
		req.Message,
	)
	if err != nil {
		if errors.Is(err, stylist.ErrNotConfigured) {
			httperr.Internal(c, "stylist_not_configured", "AI stylist is not configured.")
			return
		}
		// Upstream failures are relayed verbatim; the client shows a
		// toast and the user retries.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": answer,
		"usage":    usage,
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainchat "github.com/abhishek-0203/neural-thread-couture/internal/domain/chat"
	"github.com/abhishek-0203/neural-thread-couture/internal/dto"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/httpresp"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	ucchat "github.com/abhishek-0203/neural-thread-couture/internal/usecase/chat"
)

type ConversationHandler struct {
	db   *gorm.DB
	repo domainchat.Repository

	findOrCreateUC *ucchat.FindOrCreateConversation
	sendMessageUC  *ucchat.SendMessage
}

func NewConversationHandler(
	db *gorm.DB,
	repo domainchat.Repository,
	findOrCreateUC *ucchat.FindOrCreateConversation,
	sendMessageUC *ucchat.SendMessage,
) *ConversationHandler {
	return &ConversationHandler{
		db:             db,
		repo:           repo,
		findOrCreateUC: findOrCreateUC,
		sendMessageUC:  sendMessageUC,
	}
}

// ======================================================
// LIST (with the other participant's profile attached)
// ======================================================
func (h *ConversationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	convs, err := h.repo.ListConversationsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "conversation_list_failed", "Could not list conversations.")
		return
	}

	out := make([]dto.ConversationListDTO, 0, len(convs))
	for _, conv := range convs {
		item := dto.ConversationListDTO{
			ID:           conv.ID,
			Participant1: conv.Participant1ID,
			Participant2: conv.Participant2ID,
			CreatedAt:    conv.CreatedAt,
			UpdatedAt:    conv.UpdatedAt,
		}

		var other models.Profile
		if err := h.db.
			Where("user_id = ?", conv.OtherParticipant(userID)).
			First(&other).Error; err == nil {
			item.OtherParticipant = &other
		}

		out = append(out, item)
	}

	httpresp.List(c, out)
}

// ======================================================
// FIND OR CREATE (first contact)
// ======================================================

type directConversationRequest struct {
	OtherUserID uint `json:"other_user_id" binding:"required"`
}

func (h *ConversationHandler) FindOrCreate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req directConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	conv, err := h.findOrCreateUC.Execute(c.Request.Context(), userID, req.OtherUserID)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not open conversation.")
			return
		}
		httperr.Internal(c, "conversation_open_failed", "Could not open conversation.")
		return
	}

	httpresp.OK(c, conv)
}

// ======================================================
// MESSAGES
// ======================================================

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	convID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_conversation_id", "Invalid conversation id.")
		return
	}

	// Membership check before exposing history.
	if _, err := h.repo.GetConversationForUser(c.Request.Context(), uint(convID), userID); err != nil {
		httperr.NotFound(c, "conversation_not_found", "Conversation not found.")
		return
	}

	msgs, err := h.repo.ListMessages(c.Request.Context(), uint(convID))
	if err != nil {
		httperr.Internal(c, "message_list_failed", "Could not list messages.")
		return
	}

	httpresp.List(c, msgs)
}

type sendMessageRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	convID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_conversation_id", "Invalid conversation id.")
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	msg, err := h.sendMessageUC.Execute(c.Request.Context(), ucchat.SendMessageInput{
		ConversationID: uint(convID),
		SenderID:       userID,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		if httperr.IsBusiness(err, "conversation_not_found") {
			httperr.NotFound(c, "conversation_not_found", "Conversation not found.")
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not send message.")
			return
		}
		httperr.Internal(c, "message_send_failed", "Could not send message.")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

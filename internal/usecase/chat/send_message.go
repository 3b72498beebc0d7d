package chat

import (
	"context"
	"strings"

	domain "github.com/abhishek-0203/neural-thread-couture/internal/domain/chat"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	"github.com/abhishek-0203/neural-thread-couture/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SendMessageInput struct {
	ConversationID uint
	SenderID       uint

	Content  string
	ImageURL string
}

// ======================================================
// USE CASE
// ======================================================

type SendMessage struct {
	repo     domain.Repository
	notifier Notifier
}

func NewSendMessage(repo domain.Repository, notifier Notifier) *SendMessage {
	return &SendMessage{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *SendMessage) Execute(
	ctx context.Context,
	in SendMessageInput,
) (*models.Message, error) {

	conv, err := uc.repo.GetConversationForUser(ctx, in.ConversationID, in.SenderID)
	if err != nil {
		return nil, httperr.ErrBusiness("conversation_not_found")
	}

	// Whitespace-only sends never reach the store.
	content := strings.TrimSpace(in.Content)
	if content == "" && in.ImageURL == "" {
		return nil, httperr.ErrBusiness("empty_message")
	}

	msgType := models.MessageTypeText
	if in.ImageURL != "" {
		msgType = models.MessageTypeImage
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       in.SenderID,
		Content:        content,
		MessageType:    msgType,
		ImageURL:       in.ImageURL,
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// Bump updated_at so conversation lists resort; the original relied
	// on a backend trigger for this.
	now := timezone.Now()
	if err := uc.repo.TouchConversation(ctx, conv.ID, now); err == nil {
		conv.UpdatedAt = now
	}

	uc.notifier.MessageCreated(conv, msg)
	uc.notifier.ConversationUpdated(conv)

	return msg, nil
}

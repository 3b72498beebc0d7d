package chat

import (
	"context"
	"time"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type Repository interface {
	// -------- Conversation --------

	// FindConversationByPair checks both orderings of the pair and
	// returns nil, nil when no conversation exists.
	FindConversationByPair(
		ctx context.Context,
		userA uint,
		userB uint,
	) (*models.Conversation, error)

	CreateConversation(
		ctx context.Context,
		conv *models.Conversation,
	) error

	GetConversationForUser(
		ctx context.Context,
		conversationID uint,
		userID uint,
	) (*models.Conversation, error)

	ListConversationsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Conversation, error)

	// TouchConversation bumps updated_at so conversation lists sort by
	// recent activity.
	TouchConversation(
		ctx context.Context,
		conversationID uint,
		at time.Time,
	) error

	// -------- Message --------

	ListMessages(
		ctx context.Context,
		conversationID uint,
	) ([]models.Message, error)

	CreateMessage(
		ctx context.Context,
		msg *models.Message,
	) error
}

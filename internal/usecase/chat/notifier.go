package chat

import "github.com/abhishek-0203/neural-thread-couture/internal/models"

// Notifier fans realtime events out to connected participants. The hub
// implements it; tests use a recording fake.
type Notifier interface {
	MessageCreated(conv *models.Conversation, msg *models.Message)
	ConversationUpdated(conv *models.Conversation)
}

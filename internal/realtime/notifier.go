package realtime

import (
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	ucchat "github.com/abhishek-0203/neural-thread-couture/internal/usecase/chat"
)

// ChatNotifier adapts the hub to the chat use-case Notifier. Message
// events go to both participants, the sender included: the sender's UI
// appends on the echo, not on the send path.
type ChatNotifier struct {
	hub *Hub
}

func NewChatNotifier(hub *Hub) *ChatNotifier {
	return &ChatNotifier{hub: hub}
}

func (n *ChatNotifier) MessageCreated(conv *models.Conversation, msg *models.Message) {
	n.hub.Publish(
		[]uint{conv.Participant1ID, conv.Participant2ID},
		Event{Type: EventMessageNew, Data: msg},
	)
}

func (n *ChatNotifier) ConversationUpdated(conv *models.Conversation) {
	n.hub.Publish(
		[]uint{conv.Participant1ID, conv.Participant2ID},
		Event{Type: EventConversationUpdated, Data: conv},
	)
}

// Compile-time check
var _ ucchat.Notifier = (*ChatNotifier)(nil)

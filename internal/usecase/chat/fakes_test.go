package chat

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

// fakeRepository is an in-memory stand-in for the gorm repository.
type fakeRepository struct {
	conversations []*models.Conversation
	messages      []*models.Message
	nextID        uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) FindConversationByPair(_ context.Context, userA, userB uint) (*models.Conversation, error) {
	for _, c := range f.conversations {
		if (c.Participant1ID == userA && c.Participant2ID == userB) ||
			(c.Participant1ID == userB && c.Participant2ID == userA) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) CreateConversation(_ context.Context, conv *models.Conversation) error {
	conv.ID = f.nextID
	f.nextID++
	f.conversations = append(f.conversations, conv)
	return nil
}

func (f *fakeRepository) GetConversationForUser(_ context.Context, conversationID, userID uint) (*models.Conversation, error) {
	for _, c := range f.conversations {
		if c.ID == conversationID && c.HasParticipant(userID) {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepository) ListConversationsForUser(_ context.Context, userID uint) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range f.conversations {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepository) TouchConversation(_ context.Context, conversationID uint, at time.Time) error {
	for _, c := range f.conversations {
		if c.ID == conversationID {
			c.UpdatedAt = at
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepository) ListMessages(_ context.Context, conversationID uint) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateMessage(_ context.Context, msg *models.Message) error {
	msg.ID = f.nextID
	f.nextID++
	f.messages = append(f.messages, msg)
	return nil
}

// recordingNotifier counts fan-out calls instead of touching websockets.
type recordingNotifier struct {
	messageEvents      []*models.Message
	conversationEvents []*models.Conversation
}

func (n *recordingNotifier) MessageCreated(_ *models.Conversation, msg *models.Message) {
	n.messageEvents = append(n.messageEvents, msg)
}

func (n *recordingNotifier) ConversationUpdated(conv *models.Conversation) {
	n.conversationEvents = append(n.conversationEvents, conv)
}

package chat

import (
	"context"
	"testing"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

func seedConversation(repo *fakeRepository, a, b uint) *models.Conversation {
	conv := &models.Conversation{Participant1ID: a, Participant2ID: b}
	_ = repo.CreateConversation(context.Background(), conv)
	return conv
}

func TestSendMessage_TrimsAndStoresText(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	conv := seedConversation(repo, 1, 2)

	uc := NewSendMessage(repo, notifier)

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       1,
		Content:        "  hello there  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Content != "hello there" {
		t.Fatalf("expected trimmed content, got %q", msg.Content)
	}
	if msg.MessageType != models.MessageTypeText {
		t.Fatalf("expected text message, got %q", msg.MessageType)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(repo.messages))
	}
	if len(notifier.messageEvents) != 1 || len(notifier.conversationEvents) != 1 {
		t.Fatalf("expected one message and one conversation event, got %d/%d",
			len(notifier.messageEvents), len(notifier.conversationEvents))
	}
}

func TestSendMessage_WhitespaceOnlyNeverStored(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	conv := seedConversation(repo, 1, 2)

	uc := NewSendMessage(repo, notifier)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       1,
		Content:        "   \n\t ",
	})
	if !httperr.IsBusiness(err, "empty_message") {
		t.Fatalf("expected empty_message, got %v", err)
	}

	if len(repo.messages) != 0 {
		t.Fatalf("whitespace-only send must not reach the store, got %d rows", len(repo.messages))
	}
	if len(notifier.messageEvents) != 0 {
		t.Fatalf("no events should fire for a rejected send")
	}
}

func TestSendMessage_ImageURLSetsImageType(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	conv := seedConversation(repo, 1, 2)

	uc := NewSendMessage(repo, notifier)

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       2,
		ImageURL:       "https://cdn.example.com/looks/abc.webp",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageType != models.MessageTypeImage {
		t.Fatalf("expected image message, got %q", msg.MessageType)
	}
}

func TestSendMessage_NonParticipantRejected(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	conv := seedConversation(repo, 1, 2)

	uc := NewSendMessage(repo, notifier)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       99,
		Content:        "let me in",
	})
	if !httperr.IsBusiness(err, "conversation_not_found") {
		t.Fatalf("expected conversation_not_found, got %v", err)
	}
}

func TestSendMessage_BumpsConversationUpdatedAt(t *testing.T) {
	repo := newFakeRepository()
	notifier := &recordingNotifier{}
	conv := seedConversation(repo, 1, 2)
	before := conv.UpdatedAt

	uc := NewSendMessage(repo, notifier)

	if _, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID,
		SenderID:       1,
		Content:        "ping",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !conv.UpdatedAt.After(before) {
		t.Fatalf("expected updated_at to advance past %v, got %v", before, conv.UpdatedAt)
	}
}

package chat

import (
	"context"

	domain "github.com/abhishek-0203/neural-thread-couture/internal/domain/chat"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

// FindOrCreateConversation resolves the single conversation for an
// unordered pair of accounts, creating it on first contact.
//
// The lookup-then-insert is not atomic: two concurrent first contacts
// for the same pair can create two rows. Sequential calls are
// idempotent, which is the guarantee the UI depends on.
type FindOrCreateConversation struct {
	repo     domain.Repository
	notifier Notifier
}

func NewFindOrCreateConversation(repo domain.Repository, notifier Notifier) *FindOrCreateConversation {
	return &FindOrCreateConversation{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *FindOrCreateConversation) Execute(
	ctx context.Context,
	userID uint,
	otherUserID uint,
) (*models.Conversation, error) {

	if userID == otherUserID {
		return nil, httperr.ErrBusiness("cannot_chat_with_self")
	}

	existing, err := uc.repo.FindConversationByPair(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	conv := &models.Conversation{
		Participant1ID: userID,
		Participant2ID: otherUserID,
	}

	if err := uc.repo.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}

	uc.notifier.ConversationUpdated(conv)

	return conv, nil
}

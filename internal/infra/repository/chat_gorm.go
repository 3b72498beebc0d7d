package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/abhishek-0203/neural-thread-couture/internal/domain/chat"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

// --------------------------------------------------
// Conversation
// --------------------------------------------------

func (r *ChatGormRepository) FindConversationByPair(
	ctx context.Context,
	userA uint,
	userB uint,
) (*models.Conversation, error) {

	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Where(
			"(participant_1_id = ? AND participant_2_id = ?) OR (participant_1_id = ? AND participant_2_id = ?)",
			userA, userB, userB, userA,
		).
		First(&conv).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &conv, nil
}

func (r *ChatGormRepository) CreateConversation(
	ctx context.Context,
	conv *models.Conversation,
) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *ChatGormRepository) GetConversationForUser(
	ctx context.Context,
	conversationID uint,
	userID uint,
) (*models.Conversation, error) {

	var conv models.Conversation
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND (participant_1_id = ? OR participant_2_id = ?)",
			conversationID, userID, userID,
		).
		First(&conv).Error; err != nil {
		return nil, err
	}

	return &conv, nil
}

func (r *ChatGormRepository) ListConversationsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Conversation, error) {

	var convs []models.Conversation
	if err := r.db.WithContext(ctx).
		Where("participant_1_id = ? OR participant_2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error; err != nil {
		return nil, err
	}

	return convs, nil
}

func (r *ChatGormRepository) TouchConversation(
	ctx context.Context,
	conversationID uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", at).Error
}

// --------------------------------------------------
// Message
// --------------------------------------------------

func (r *ChatGormRepository) ListMessages(
	ctx context.Context,
	conversationID uint,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *ChatGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Compile-time check
var _ domain.Repository = (*ChatGormRepository)(nil)

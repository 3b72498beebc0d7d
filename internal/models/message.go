package models

import "time"

// Messages are append-only: never updated, never deleted.
type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConversationID uint `gorm:"index;not null" json:"conversation_id"`
	SenderID       uint `gorm:"index;not null" json:"sender_id"`

	Content     string `gorm:"type:text;not null" json:"content"`
	MessageType string `gorm:"size:20;default:'text'" json:"message_type"` // text | image
	ImageURL    string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

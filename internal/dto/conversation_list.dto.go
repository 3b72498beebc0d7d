package dto

import (
	"time"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type ConversationListDTO struct {
	ID               uint            `json:"id"`
	Participant1     uint            `json:"participant_1"`
	Participant2     uint            `json:"participant_2"`
	OtherParticipant *models.Profile `json:"other_participant"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

package models

import "time"

// Conversation pairs two accounts. The pair is stored in creation order;
// lookups must check both orderings. There is deliberately no unique
// constraint on the pair — see DESIGN.md on the concurrent create race.
type Conversation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Participant1ID uint `gorm:"index;not null" json:"participant_1"`
	Participant2ID uint `gorm:"index;not null" json:"participant_2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

func (c *Conversation) HasParticipant(userID uint) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}

func (c *Conversation) OtherParticipant(userID uint) uint {
	if c.Participant1ID == userID {
		return c.Participant2ID
	}
	return c.Participant1ID
}

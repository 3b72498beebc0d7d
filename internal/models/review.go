package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReviewerID     uint `gorm:"index;not null" json:"reviewer_id"`
	ReviewedUserID uint `gorm:"index;not null" json:"reviewed_user_id"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

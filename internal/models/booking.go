package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	ProviderID uint `gorm:"index;not null" json:"provider_id"`

	ServiceType string    `gorm:"size:50;not null" json:"service_type"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `gorm:"size:5" json:"booking_time"` // "15:04"
	Notes       string    `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

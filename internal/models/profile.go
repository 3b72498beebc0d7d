package models

import "time"

// Profile carries the role-specific public data of an account.
// UserType is set at sign-up and never changes afterwards; it decides
// which optional field groups are meaningful.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	UserType string `gorm:"size:20;not null" json:"user_type"` // customer | designer | tailor
	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:100" json:"location"`
	Age      int    `json:"age"`

	// Provider fields (designer / tailor)
	Experience        *int     `json:"experience"`
	Expertise         []string `gorm:"serializer:json" json:"expertise"`
	Bio               string   `gorm:"type:text" json:"bio"`
	PortfolioImageURL string   `gorm:"size:255" json:"portfolio_image_url"`

	// Customer fields
	Gender           *string  `gorm:"size:10" json:"gender"`
	Height           *int     `json:"height"` // cm
	Weight           *int     `json:"weight"` // kg
	Waist            *int     `json:"waist"`  // cm
	BodyShape        *string  `gorm:"size:30" json:"body_shape"`
	FashionInterests []string `gorm:"serializer:json" json:"fashion_interests"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	UserTypeCustomer = "customer"
	UserTypeDesigner = "designer"
	UserTypeTailor   = "tailor"
)

func (p *Profile) IsProvider() bool {
	return p.UserType == UserTypeDesigner || p.UserType == UserTypeTailor
}

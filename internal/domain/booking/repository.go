package booking

import (
	"context"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type Repository interface {
	// -------- Profiles --------
	GetProfileByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Profile, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		providerID uint,
	) (*models.Booking, error)

	GetBookingForParticipant(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}

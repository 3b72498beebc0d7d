package booking

import (
	"context"
	"strings"
	"time"

	"github.com/abhishek-0203/neural-thread-couture/internal/audit"
	domain "github.com/abhishek-0203/neural-thread-couture/internal/domain/booking"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	"github.com/abhishek-0203/neural-thread-couture/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ProviderID uint

	ServiceType string
	Date        string // "2006-01-02"
	Time        string // "15:04"
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Provider must exist and actually be a provider
	// --------------------------------------------------
	provider, err := uc.repo.GetProfileByUserID(ctx, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}
	if !provider.IsProvider() {
		return nil, httperr.ErrBusiness("not_a_provider")
	}

	if in.CustomerID == in.ProviderID {
		return nil, httperr.ErrBusiness("cannot_book_self")
	}

	// --------------------------------------------------
	// Service type and slot
	// --------------------------------------------------
	serviceType := strings.TrimSpace(in.ServiceType)
	if serviceType == "" {
		return nil, httperr.ErrBusiness("missing_service_type")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(timezone.DefaultTimezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(timezone.Now()) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	// --------------------------------------------------
	// Creation (status centralized in the domain)
	// --------------------------------------------------
	date, _ := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(timezone.DefaultTimezone))

	b := &models.Booking{
		CustomerID:  in.CustomerID,
		ProviderID:  in.ProviderID,
		ServiceType: serviceType,
		BookingDate: date,
		BookingTime: in.Time,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

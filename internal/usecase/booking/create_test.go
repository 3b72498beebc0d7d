package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/abhishek-0203/neural-thread-couture/internal/domain/booking"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	"github.com/abhishek-0203/neural-thread-couture/internal/timezone"
)

type fakeRepository struct {
	profiles map[uint]*models.Profile
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		profiles: map[uint]*models.Profile{},
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

func (f *fakeRepository) GetProfileByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepository) GetBookingForProvider(_ context.Context, bookingID, providerID uint) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || b.ProviderID != providerID {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (f *fakeRepository) GetBookingForParticipant(_ context.Context, bookingID, userID uint) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || (b.ProviderID != userID && b.CustomerID != userID) {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (f *fakeRepository) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return errors.New("record not found")
	}
	f.bookings[b.ID] = b
	return nil
}

func seedProvider(repo *fakeRepository, userID uint) {
	repo.profiles[userID] = &models.Profile{
		UserID:   userID,
		UserType: models.UserTypeTailor,
		Name:     "Kabir",
	}
}

// futureSlot returns a date/time pair safely in the future.
func futureSlot() (string, string) {
	at := timezone.Now().Add(48 * time.Hour)
	return at.Format("2006-01-02"), "14:30"
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepository()
	seedProvider(repo, 2)

	uc := NewCreateBooking(repo, nil)
	date, slot := futureSlot()

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID:  1,
		ProviderID:  2,
		ServiceType: "blouse stitching",
		Date:        date,
		Time:        slot,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending status, got %q", b.Status)
	}
	if b.BookingTime != slot {
		t.Fatalf("expected booking time %q, got %q", slot, b.BookingTime)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected one stored booking, got %d", len(repo.bookings))
	}
}

func TestCreateBooking_CustomerIsNotAProvider(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles[2] = &models.Profile{UserID: 2, UserType: models.UserTypeCustomer}

	uc := NewCreateBooking(repo, nil)
	date, slot := futureSlot()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: 1, ProviderID: 2, ServiceType: "fitting", Date: date, Time: slot,
	})
	if !httperr.IsBusiness(err, "not_a_provider") {
		t.Fatalf("expected not_a_provider, got %v", err)
	}
}

func TestCreateBooking_UnknownProvider(t *testing.T) {
	uc := NewCreateBooking(newFakeRepository(), nil)
	date, slot := futureSlot()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: 1, ProviderID: 42, ServiceType: "fitting", Date: date, Time: slot,
	})
	if !httperr.IsBusiness(err, "provider_not_found") {
		t.Fatalf("expected provider_not_found, got %v", err)
	}
}

func TestCreateBooking_SelfBookingRejected(t *testing.T) {
	repo := newFakeRepository()
	seedProvider(repo, 2)

	uc := NewCreateBooking(repo, nil)
	date, slot := futureSlot()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID: 2, ProviderID: 2, ServiceType: "fitting", Date: date, Time: slot,
	})
	if !httperr.IsBusiness(err, "cannot_book_self") {
		t.Fatalf("expected cannot_book_self, got %v", err)
	}
}

func TestCreateBooking_PastSlotRejected(t *testing.T) {
	repo := newFakeRepository()
	seedProvider(repo, 2)

	uc := NewCreateBooking(repo, nil)
	past := timezone.Now().Add(-24 * time.Hour)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerID:  1,
		ProviderID:  2,
		ServiceType: "fitting",
		Date:        past.Format("2006-01-02"),
		Time:        "10:00",
	})
	if !httperr.IsBusiness(err, "time_in_past") {
		t.Fatalf("expected time_in_past, got %v", err)
	}
}

func TestCreateBooking_InvalidInputs(t *testing.T) {
	repo := newFakeRepository()
	seedProvider(repo, 2)

	uc := NewCreateBooking(repo, nil)
	ctx := context.Background()
	date, slot := futureSlot()

	if _, err := uc.Execute(ctx, CreateBookingInput{
		CustomerID: 1, ProviderID: 2, ServiceType: "  ", Date: date, Time: slot,
	}); !httperr.IsBusiness(err, "missing_service_type") {
		t.Fatalf("expected missing_service_type, got %v", err)
	}

	if _, err := uc.Execute(ctx, CreateBookingInput{
		CustomerID: 1, ProviderID: 2, ServiceType: "fitting", Date: "not-a-date", Time: slot,
	}); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}

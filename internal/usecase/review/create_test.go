package review

import (
	"context"
	"errors"
	"testing"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type fakeRepository struct {
	profiles map[uint]*models.Profile
	reviews  []*models.Review
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: map[uint]*models.Profile{}}
}

func (f *fakeRepository) GetProfileByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepository) CreateReview(_ context.Context, r *models.Review) error {
	r.ID = uint(len(f.reviews) + 1)
	f.reviews = append(f.reviews, r)
	return nil
}

func TestCreateReview_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles[2] = &models.Profile{UserID: 2, UserType: models.UserTypeDesigner, Name: "Meera"}

	uc := NewCreateReview(repo, nil)

	r, err := uc.Execute(context.Background(), CreateReviewInput{
		ReviewerID:     1,
		ReviewedUserID: 2,
		Rating:         4,
		Comment:        "  great lehenga work  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Rating != 4 {
		t.Fatalf("expected rating 4, got %d", r.Rating)
	}
	if r.Comment != "great lehenga work" {
		t.Fatalf("expected trimmed comment, got %q", r.Comment)
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("expected one stored review, got %d", len(repo.reviews))
	}
}

func TestCreateReview_RatingBounds(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles[2] = &models.Profile{UserID: 2, UserType: models.UserTypeTailor}

	uc := NewCreateReview(repo, nil)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := uc.Execute(ctx, CreateReviewInput{ReviewerID: 1, ReviewedUserID: 2, Rating: rating})
		if !httperr.IsBusiness(err, "invalid_rating") {
			t.Fatalf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}

	for rating := 1; rating <= 5; rating++ {
		if _, err := uc.Execute(ctx, CreateReviewInput{ReviewerID: 1, ReviewedUserID: 2, Rating: rating}); err != nil {
			t.Fatalf("rating %d: unexpected error: %v", rating, err)
		}
	}
}

func TestCreateReview_SelfReviewRejected(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles[1] = &models.Profile{UserID: 1, UserType: models.UserTypeDesigner}

	uc := NewCreateReview(repo, nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{ReviewerID: 1, ReviewedUserID: 1, Rating: 5})
	if !httperr.IsBusiness(err, "cannot_review_self") {
		t.Fatalf("expected cannot_review_self, got %v", err)
	}
}

func TestCreateReview_UnknownUserRejected(t *testing.T) {
	uc := NewCreateReview(newFakeRepository(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{ReviewerID: 1, ReviewedUserID: 42, Rating: 3})
	if !httperr.IsBusiness(err, "reviewed_user_not_found") {
		t.Fatalf("expected reviewed_user_not_found, got %v", err)
	}
}

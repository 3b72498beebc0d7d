package review

import (
	"context"
	"strings"

	"github.com/abhishek-0203/neural-thread-couture/internal/audit"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type Repository interface {
	GetProfileByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	CreateReview(ctx context.Context, r *models.Review) error
}

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	ReviewerID     uint
	ReviewedUserID uint
	Rating         int
	Comment        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreateReview(repo Repository, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	if in.ReviewerID == in.ReviewedUserID {
		return nil, httperr.ErrBusiness("cannot_review_self")
	}

	if _, err := uc.repo.GetProfileByUserID(ctx, in.ReviewedUserID); err != nil {
		return nil, httperr.ErrBusiness("reviewed_user_not_found")
	}

	r := &models.Review{
		ReviewerID:     in.ReviewerID,
		ReviewedUserID: in.ReviewedUserID,
		Rating:         in.Rating,
		Comment:        strings.TrimSpace(in.Comment),
	}

	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ReviewerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return r, nil
}

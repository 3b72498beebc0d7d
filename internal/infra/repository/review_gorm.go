package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	usecase "github.com/abhishek-0203/neural-thread-couture/internal/usecase/review"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetProfileByUserID(
	ctx context.Context,
	userID uint,
) (*models.Profile, error) {

	var profile models.Profile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Compile-time check
var _ usecase.Repository = (*ReviewGormRepository)(nil)

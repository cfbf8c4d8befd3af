package repository

import (
	"context"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// RatingsForHospital returns every rating ever left for the hospital.
func (r *ReviewRepository) RatingsForHospital(ctx context.Context, hospitalID string) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hospital_id = ?", hospitalID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListByHospital returns the hospital's reviews, newest first, with the author joined.
func (r *ReviewRepository) ListByHospital(ctx context.Context, hospitalID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

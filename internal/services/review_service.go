package services

import (
	"context"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"

	"go.uber.org/zap"
)

type SubmitReviewInput struct {
	HospitalID string `json:"hospitalId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required"`
}

type ReviewService struct {
	reviews   ReviewStore
	hospitals HospitalStore
	log       *zap.Logger
}

func NewReviewService(reviews ReviewStore, hospitals HospitalStore, log *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, hospitals: hospitals, log: log}
}

// SubmitReview stores the caller's review and recomputes the hospital's aggregate rating
// from every stored review.
//
// The recompute is a read followed by an overwrite with no lock: two reviews submitted
// concurrently for the same hospital may leave an aggregate that misses one of them until
// the next review is submitted.
func (s *ReviewService) SubmitReview(ctx context.Context, identity models.Identity, in SubmitReviewInput) (*models.Review, error) {
	if !identity.IsPatient() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}

	review := &models.Review{
		PatientID:  identity.SubjectID,
		HospitalID: in.HospitalID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, apperror.Internal(err)
	}

	ratings, err := s.reviews.RatingsForHospital(ctx, in.HospitalID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	average, count := meanRating(ratings)
	if err := s.hospitals.UpdateRating(ctx, in.HospitalID, average, count); err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Debug("Hospital rating recomputed",
		zap.String("hospital_id", in.HospitalID), zap.Float64("rating", average), zap.Int("total_reviews", count))
	return review, nil
}

// ListByHospital returns a hospital's reviews, newest first.
func (s *ReviewService) ListByHospital(ctx context.Context, hospitalID string) ([]models.Review, error) {
	if hospitalID == "" {
		return nil, apperror.Validation("Hospital ID required")
	}
	reviews, err := s.reviews.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}

func meanRating(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), len(ratings)
}

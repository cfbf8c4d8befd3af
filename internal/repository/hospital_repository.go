package repository

import (
	"context"
	"strings"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// HospitalSearch filters the public hospital directory.
type HospitalSearch struct {
	Query          string // name, specialties or address
	City           string
	Specialization string
	SortBy         string // rating | name | anything else sorts newest first
	Descending     bool
	Limit          int
}

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

func (r *HospitalRepository) FindByID(ctx context.Context, id string) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.WithContext(ctx).First(&hospital, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &hospital, nil
}

func (r *HospitalRepository) FindByOwner(ctx context.Context, userID string) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&hospital).Error; err != nil {
		return nil, translate(err)
	}
	return &hospital, nil
}

// UpsertByOwner creates the owner's profile or overwrites its editable fields.
func (r *HospitalRepository) UpsertByOwner(ctx context.Context, profile *models.Hospital) (*models.Hospital, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Hospital
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(profile).Error
		}
		if err != nil {
			return err
		}
		profile.ID = existing.ID
		return tx.Model(&existing).
			Select("name", "address", "phone", "email", "description", "specialties", "city").
			Updates(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByOwner(ctx, profile.UserID)
}

// UpdateRating overwrites the aggregate rating. A missing hospital is not an error.
func (r *HospitalRepository) UpdateRating(ctx context.Context, hospitalID string, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).Model(&models.Hospital{}).
		Where("id = ?", hospitalID).
		Updates(map[string]interface{}{"rating": rating, "total_reviews": totalReviews}).Error
}

func (r *HospitalRepository) Search(ctx context.Context, search HospitalSearch) ([]models.Hospital, error) {
	query := r.db.WithContext(ctx).Model(&models.Hospital{})

	if search.Query != "" {
		pattern := likePattern(search.Query)
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(CAST(specialties AS CHAR)) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if search.City != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(search.City))
	}
	if search.Specialization != "" {
		query = query.Where("LOWER(CAST(specialties AS CHAR)) LIKE ?", likePattern(search.Specialization))
	}

	direction := " ASC"
	if search.Descending {
		direction = " DESC"
	}
	switch search.SortBy {
	case "rating":
		query = query.Order("rating" + direction)
	case "name":
		query = query.Order("name" + direction)
	default:
		query = query.Order("created_at DESC")
	}

	if search.Limit > 0 {
		query = query.Limit(search.Limit)
	}

	var hospitals []models.Hospital
	if err := query.Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

// ListWithOwners returns every hospital with its administrator account loaded.
func (r *HospitalRepository) ListWithOwners(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	if err := r.db.WithContext(ctx).Preload("Owner").Order("name ASC").Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

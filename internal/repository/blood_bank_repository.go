package repository

import (
	"context"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

type BloodBankRepository struct {
	db *gorm.DB
}

func NewBloodBankRepository(db *gorm.DB) *BloodBankRepository {
	return &BloodBankRepository{db: db}
}

// Search matches district case-insensitively, ordered by district then bank name.
func (r *BloodBankRepository) Search(ctx context.Context, location string, limit int) ([]models.BloodBankAvailability, error) {
	query := r.db.WithContext(ctx).Model(&models.BloodBankAvailability{})
	if location != "" {
		query = query.Where("LOWER(district) LIKE ?", likePattern(location))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var banks []models.BloodBankAvailability
	if err := query.Order("district ASC").Order("blood_bank_name ASC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

// Upsert stores a scraped record keyed by district and bank name.
func (r *BloodBankRepository) Upsert(ctx context.Context, bank *models.BloodBankAvailability) error {
	var existing models.BloodBankAvailability
	err := r.db.WithContext(ctx).
		Where("district = ? AND blood_bank_name = ?", bank.District, bank.BloodBankName).
		Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}
	if existing.ID != "" {
		bank.ID = existing.ID
		bank.CreatedAt = existing.CreatedAt
	}
	return r.db.WithContext(ctx).Save(bank).Error
}

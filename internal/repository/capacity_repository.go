package repository

import (
	"context"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CapacityRepository stores the bed and blood records of hospitals.
type CapacityRepository struct {
	db *gorm.DB
}

func NewCapacityRepository(db *gorm.DB) *CapacityRepository {
	return &CapacityRepository{db: db}
}

// UpsertBeds writes the hospital's single bed record, creating it on first use.
func (r *CapacityRepository) UpsertBeds(ctx context.Context, beds *models.BedAvailability) (*models.BedAvailability, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hospital_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"general_total", "general_available", "icu_total", "icu_available", "updated_at",
		}),
	}).Create(beds).Error
	if err != nil {
		return nil, err
	}
	return r.BedsForHospital(ctx, beds.HospitalID)
}

// UpsertBlood writes the units of one (hospital, blood type) pair.
func (r *CapacityRepository) UpsertBlood(ctx context.Context, blood *models.BloodInventory) (*models.BloodInventory, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hospital_id"}, {Name: "blood_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"units", "updated_at"}),
	}).Create(blood).Error
	if err != nil {
		return nil, err
	}

	var stored models.BloodInventory
	err = r.db.WithContext(ctx).
		Where("hospital_id = ? AND blood_type = ?", blood.HospitalID, blood.BloodType).
		First(&stored).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

// BedsForHospital returns nil without error when the hospital never reported beds.
func (r *CapacityRepository) BedsForHospital(ctx context.Context, hospitalID string) (*models.BedAvailability, error) {
	var beds models.BedAvailability
	err := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Limit(1).Find(&beds).Error
	if err != nil {
		return nil, err
	}
	if beds.ID == "" {
		return nil, nil
	}
	return &beds, nil
}

func (r *CapacityRepository) BloodForHospital(ctx context.Context, hospitalID string) ([]models.BloodInventory, error) {
	var inventory []models.BloodInventory
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("blood_type ASC").
		Find(&inventory).Error
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

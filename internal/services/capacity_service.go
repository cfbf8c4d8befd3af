package services

import (
	"context"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"
)

type BedCountInput struct {
	Total     int `json:"total" validate:"min=0"`
	Available int `json:"available" validate:"min=0"`
}

type BedInput struct {
	GeneralBeds BedCountInput `json:"generalBeds"`
	ICUBeds     BedCountInput `json:"icuBeds"`
}

type BloodInput struct {
	BloodType string `json:"bloodType" validate:"required,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	Units     int    `json:"units" validate:"min=0"`
}

// CapacityService writes the bed and blood records of the caller's own hospital.
// Available counts are not checked against totals.
type CapacityService struct {
	capacity  CapacityStore
	hospitals HospitalStore
}

func NewCapacityService(capacity CapacityStore, hospitals HospitalStore) *CapacityService {
	return &CapacityService{capacity: capacity, hospitals: hospitals}
}

func (s *CapacityService) UpsertBeds(ctx context.Context, identity models.Identity, in BedInput) (*models.BedAvailability, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}
	hospital, err := ownedHospital(ctx, s.hospitals, identity)
	if err != nil {
		return nil, err
	}

	beds, err := s.capacity.UpsertBeds(ctx, &models.BedAvailability{
		HospitalID:  hospital.ID,
		GeneralBeds: models.BedCount{Total: in.GeneralBeds.Total, Available: in.GeneralBeds.Available},
		ICUBeds:     models.BedCount{Total: in.ICUBeds.Total, Available: in.ICUBeds.Available},
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return beds, nil
}

func (s *CapacityService) UpsertBlood(ctx context.Context, identity models.Identity, in BloodInput) (*models.BloodInventory, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}
	hospital, err := ownedHospital(ctx, s.hospitals, identity)
	if err != nil {
		return nil, err
	}

	blood, err := s.capacity.UpsertBlood(ctx, &models.BloodInventory{
		HospitalID: hospital.ID,
		BloodType:  in.BloodType,
		Units:      in.Units,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return blood, nil
}

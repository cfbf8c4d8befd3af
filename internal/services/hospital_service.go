package services

import (
	"context"
	"errors"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
)

// HospitalSearchLimit caps the public directory listing.
const HospitalSearchLimit = 50

type HospitalProfileInput struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Address     string   `json:"address" validate:"required,min=5"`
	Phone       string   `json:"phone" validate:"required,min=10"`
	Email       string   `json:"email" validate:"required,email"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
	City        string   `json:"city"`
}

type DoctorInput struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Specialization  string   `json:"specialization" validate:"required,min=2"`
	Experience      int      `json:"experience" validate:"min=0"`
	Qualification   string   `json:"qualification" validate:"required,min=2"`
	ConsultationFee float64  `json:"consultationFee" validate:"min=0"`
	AvailableSlots  []string `json:"availableSlots"`
}

type SearchInput struct {
	Query          string
	City           string
	Specialization string
	SortBy         string
	SortOrder      string
}

// HospitalDetail is the public page of a hospital.
type HospitalDetail struct {
	Hospital        *models.Hospital        `json:"hospital"`
	Doctors         []models.Doctor         `json:"doctors"`
	BedAvailability *models.BedAvailability `json:"bedAvailability"`
	BloodInventory  []models.BloodInventory `json:"bloodInventory"`
}

type HospitalService struct {
	hospitals HospitalStore
	doctors   DoctorStore
	capacity  CapacityStore
}

func NewHospitalService(hospitals HospitalStore, doctors DoctorStore, capacity CapacityStore) *HospitalService {
	return &HospitalService{hospitals: hospitals, doctors: doctors, capacity: capacity}
}

// UpsertProfile creates or overwrites the caller's hospital profile.
func (s *HospitalService) UpsertProfile(ctx context.Context, identity models.Identity, in HospitalProfileInput) (*models.Hospital, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}

	specialties := in.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	hospital, err := s.hospitals.UpsertByOwner(ctx, &models.Hospital{
		UserID:      identity.SubjectID,
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
		Specialties: specialties,
		City:        in.City,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return hospital, nil
}

// Profile returns the caller's hospital profile, or nil when none exists yet.
func (s *HospitalService) Profile(ctx context.Context, identity models.Identity) (*models.Hospital, error) {
	if identity.SubjectID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	hospital, err := s.hospitals.FindByOwner(ctx, identity.SubjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return hospital, nil
}

// Search lists hospitals for the public directory without their owner ids.
func (s *HospitalService) Search(ctx context.Context, in SearchInput) ([]models.Hospital, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	hospitals, err := s.hospitals.Search(ctx, repository.HospitalSearch{
		Query:          in.Query,
		City:           in.City,
		Specialization: in.Specialization,
		SortBy:         sortBy,
		Descending:     in.SortOrder == "desc",
		Limit:          HospitalSearchLimit,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for i := range hospitals {
		hospitals[i].UserID = ""
	}
	return hospitals, nil
}

// Detail returns a hospital with its doctors, bed counts and blood inventory.
func (s *HospitalService) Detail(ctx context.Context, hospitalID string) (*HospitalDetail, error) {
	hospital, err := s.hospitals.FindByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Hospital not found")
		}
		return nil, apperror.Internal(err)
	}

	doctors, err := s.doctors.ListByHospital(ctx, hospital.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	beds, err := s.capacity.BedsForHospital(ctx, hospital.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	blood, err := s.capacity.BloodForHospital(ctx, hospital.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &HospitalDetail{
		Hospital:        hospital,
		Doctors:         doctors,
		BedAvailability: beds,
		BloodInventory:  blood,
	}, nil
}

// AddDoctor registers a doctor at the caller's hospital.
func (s *HospitalService) AddDoctor(ctx context.Context, identity models.Identity, in DoctorInput) (*models.Doctor, error) {
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

	slots := in.AvailableSlots
	if slots == nil {
		slots = []string{}
	}
	available := true
	doctor := &models.Doctor{
		HospitalID:      hospital.ID,
		Name:            in.Name,
		Specialization:  in.Specialization,
		Experience:      in.Experience,
		Qualification:   in.Qualification,
		ConsultationFee: in.ConsultationFee,
		AvailableSlots:  slots,
		IsAvailable:     &available,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, apperror.Internal(err)
	}
	return doctor, nil
}

// ListDoctors returns the doctors of the caller's hospital.
func (s *HospitalService) ListDoctors(ctx context.Context, identity models.Identity) ([]models.Doctor, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	hospital, err := ownedHospital(ctx, s.hospitals, identity)
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctors.ListByHospital(ctx, hospital.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return doctors, nil
}

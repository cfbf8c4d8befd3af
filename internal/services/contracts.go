// Package services implements the application's operations. Every operation receives the
// caller as an explicit models.Identity and reports failures as *apperror.Error.
package services

import (
	"context"
	"errors"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type HospitalStore interface {
	FindByID(ctx context.Context, id string) (*models.Hospital, error)
	FindByOwner(ctx context.Context, userID string) (*models.Hospital, error)
	UpsertByOwner(ctx context.Context, profile *models.Hospital) (*models.Hospital, error)
	UpdateRating(ctx context.Context, hospitalID string, rating float64, totalReviews int) error
	Search(ctx context.Context, search repository.HospitalSearch) ([]models.Hospital, error)
	ListWithOwners(ctx context.Context) ([]models.Hospital, error)
}

type DoctorStore interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	ListByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error)
	ListAll(ctx context.Context) ([]models.Doctor, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	UpdateStatusForHospital(ctx context.Context, id, hospitalID string, status models.AppointmentStatus, notes *string) (*models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string, q repository.AppointmentQuery) ([]models.Appointment, error)
	ListForHospital(ctx context.Context, hospitalID string, q repository.AppointmentQuery) ([]models.Appointment, error)
	FindForPatient(ctx context.Context, id, patientID string) (*models.Appointment, error)
}

type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	RatingsForHospital(ctx context.Context, hospitalID string) ([]int, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]models.Review, error)
}

type CapacityStore interface {
	UpsertBeds(ctx context.Context, beds *models.BedAvailability) (*models.BedAvailability, error)
	UpsertBlood(ctx context.Context, blood *models.BloodInventory) (*models.BloodInventory, error)
	BedsForHospital(ctx context.Context, hospitalID string) (*models.BedAvailability, error)
	BloodForHospital(ctx context.Context, hospitalID string) ([]models.BloodInventory, error)
}

type BloodBankStore interface {
	Search(ctx context.Context, location string, limit int) ([]models.BloodBankAvailability, error)
	Upsert(ctx context.Context, bank *models.BloodBankAvailability) error
}

// Notifier delivers an inbox entry as a side effect of another operation.
type Notifier interface {
	Notify(ctx context.Context, n NotificationInput) error
}

// ownedHospital resolves the profile administered by a hospital-role caller.
func ownedHospital(ctx context.Context, hospitals HospitalStore, identity models.Identity) (*models.Hospital, error) {
	hospital, err := hospitals.FindByOwner(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Hospital profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return hospital, nil
}

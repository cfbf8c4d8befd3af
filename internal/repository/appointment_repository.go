package repository

import (
	"context"
	"time"

	"hospital-management-server/internal/models"

	"gorm.io/gorm"
)

// AppointmentQuery narrows an appointment listing. From/To form a half-open interval.
type AppointmentQuery struct {
	Status string
	From   *time.Time
	To     *time.Time
	Limit  int
}

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// UpdateStatusForHospital overwrites status and notes of the appointment matching both id and
// hospital. An empty status or nil notes leaves that column as stored. ErrNotFound is returned
// when the pair does not match.
func (r *AppointmentRepository) UpdateStatusForHospital(ctx context.Context, id, hospitalID string, status models.AppointmentStatus, notes *string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND hospital_id = ?", id, hospitalID).First(&appointment).Error; err != nil {
			return err
		}
		changes := map[string]interface{}{}
		if status != "" {
			changes["status"] = status
		}
		if notes != nil {
			changes["notes"] = *notes
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&appointment).Updates(changes).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	if err := r.db.WithContext(ctx).Preload("Patient").First(&appointment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// ListForPatient returns the patient's appointments with hospital and doctor joined.
func (r *AppointmentRepository) ListForPatient(ctx context.Context, patientID string, q AppointmentQuery) ([]models.Appointment, error) {
	query := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Doctor").
		Where("patient_id = ?", patientID)
	return r.list(query, q)
}

// ListForHospital returns the hospital's appointments with patient and doctor joined.
func (r *AppointmentRepository) ListForHospital(ctx context.Context, hospitalID string, q AppointmentQuery) ([]models.Appointment, error) {
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("hospital_id = ?", hospitalID)
	return r.list(query, q)
}

func (r *AppointmentRepository) list(query *gorm.DB, q AppointmentQuery) ([]models.Appointment, error) {
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.From != nil {
		query = query.Where("appointment_date >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("appointment_date < ?", *q.To)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date DESC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindForPatient loads one of the patient's appointments with every relation joined.
func (r *AppointmentRepository) FindForPatient(ctx context.Context, id, patientID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Doctor").
		Preload("Patient").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&appointment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HospitalReportLimit caps the appointments included in a hospital report.
const HospitalReportLimit = 50

var statusMessages = map[models.AppointmentStatus]string{
	models.StatusConfirmed: "Your appointment has been confirmed",
	models.StatusRejected:  "Your appointment has been rejected",
	models.StatusCompleted: "Your appointment has been completed",
}

type BookInput struct {
	HospitalID      string `json:"hospitalId" validate:"required"`
	DoctorID        string `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	TimeSlot        string `json:"timeSlot" validate:"required"`
	Symptoms        string `json:"symptoms"`
}

type UpdateStatusInput struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// ListFilter narrows an appointment listing. Date uses the YYYY-MM-DD layout.
type ListFilter struct {
	Status string
	Date   string
	Search string
}

// HospitalReport is a hospital's profile with its most recent appointments.
type HospitalReport struct {
	Hospital     *models.Hospital     `json:"hospital"`
	Appointments []models.Appointment `json:"appointments"`
}

type AppointmentService struct {
	appointments AppointmentStore
	hospitals    HospitalStore
	notifier     Notifier
	log          *zap.Logger
}

func NewAppointmentService(appointments AppointmentStore, hospitals HospitalStore, notifier Notifier, log *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		hospitals:    hospitals,
		notifier:     notifier,
		log:          log,
	}
}

// Book creates a pending appointment for the calling patient and notifies the hospital's
// administrator. Slots are not checked against the doctor's schedule or other bookings.
func (s *AppointmentService) Book(ctx context.Context, identity models.Identity, in BookInput) (*models.Appointment, error) {
	if !identity.IsPatient() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}
	if _, err := uuid.Parse(in.HospitalID); err != nil {
		return nil, apperror.Internal(fmt.Errorf("malformed hospital id %q: %w", in.HospitalID, err))
	}
	if _, err := uuid.Parse(in.DoctorID); err != nil {
		return nil, apperror.Internal(fmt.Errorf("malformed doctor id %q: %w", in.DoctorID, err))
	}
	date, err := parseDate(in.AppointmentDate)
	if err != nil {
		return nil, apperror.Validation("appointmentDate must use the YYYY-MM-DD format")
	}

	appointment := &models.Appointment{
		PatientID:       identity.SubjectID,
		HospitalID:      in.HospitalID,
		DoctorID:        in.DoctorID,
		AppointmentDate: date,
		TimeSlot:        in.TimeSlot,
		Status:          models.StatusPending,
		Symptoms:        in.Symptoms,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperror.Internal(err)
	}

	s.notifyHospital(ctx, appointment)
	return appointment, nil
}

func (s *AppointmentService) notifyHospital(ctx context.Context, appointment *models.Appointment) {
	hospital, err := s.hospitals.FindByID(ctx, appointment.HospitalID)
	if errors.Is(err, repository.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("Failed to look up hospital for booking notification",
			zap.String("appointment_id", appointment.ID), zap.Error(err))
		return
	}

	err = s.notifier.Notify(ctx, NotificationInput{
		UserID:  hospital.UserID,
		Title:   "New Appointment Booked",
		Message: "A new appointment has been booked at your hospital",
		Type:    models.NotificationTypeAppointment,
		Data:    map[string]interface{}{"appointmentId": appointment.ID},
	})
	if err != nil {
		s.log.Warn("Failed to notify hospital of booking",
			zap.String("appointment_id", appointment.ID), zap.Error(err))
	}
}

// UpdateStatus overwrites the status and notes of an appointment belonging to the caller's
// hospital. Fields left out of the input keep their stored value. An appointment of another
// hospital is reported as not found.
func (s *AppointmentService) UpdateStatus(ctx context.Context, identity models.Identity, appointmentID string, in UpdateStatusInput) (*models.Appointment, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	hospital, err := ownedHospital(ctx, s.hospitals, identity)
	if err != nil {
		return nil, err
	}

	status := models.AppointmentStatus(in.Status)
	appointment, err := s.appointments.UpdateStatusForHospital(ctx, appointmentID, hospital.ID, status, in.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Appointment not found")
		}
		return nil, apperror.Internal(err)
	}

	if message, ok := statusMessages[status]; ok {
		err := s.notifier.Notify(ctx, NotificationInput{
			UserID:  appointment.PatientID,
			Title:   "Appointment Update",
			Message: message,
			Type:    models.NotificationTypeAppointment,
			Data:    map[string]interface{}{"appointmentId": appointment.ID},
		})
		if err != nil {
			s.log.Warn("Failed to notify patient of status change",
				zap.String("appointment_id", appointment.ID), zap.String("status", in.Status), zap.Error(err))
		}
	}
	return appointment, nil
}

// List returns the caller's appointments, newest date first. Patients see their own bookings;
// hospitals see their hospital's bookings, optionally narrowed by patient name.
func (s *AppointmentService) List(ctx context.Context, identity models.Identity, filter ListFilter) ([]models.Appointment, error) {
	query := repository.AppointmentQuery{Status: filter.Status}
	if filter.Date != "" {
		day, err := parseDate(filter.Date)
		if err != nil {
			return nil, apperror.Validation("date must use the YYYY-MM-DD format")
		}
		next := day.AddDate(0, 0, 1)
		query.From, query.To = &day, &next
	}

	switch {
	case identity.IsPatient():
		appointments, err := s.appointments.ListForPatient(ctx, identity.SubjectID, query)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return appointments, nil
	case identity.IsHospital():
		hospital, err := ownedHospital(ctx, s.hospitals, identity)
		if err != nil {
			return nil, err
		}
		appointments, err := s.appointments.ListForHospital(ctx, hospital.ID, query)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return filterByPatientName(appointments, filter.Search), nil
	default:
		return nil, apperror.Unauthorized("Unauthorized")
	}
}

// filterByPatientName keeps appointments whose patient name contains search, ignoring case.
// It runs after the store query and is the only place free-text search is applied.
func filterByPatientName(appointments []models.Appointment, search string) []models.Appointment {
	if search == "" {
		return appointments
	}
	needle := strings.ToLower(search)
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Patient != nil && strings.Contains(strings.ToLower(a.Patient.Name), needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Receipt fetches one of the caller's appointments with hospital, doctor and patient joined.
func (s *AppointmentService) Receipt(ctx context.Context, identity models.Identity, appointmentID string) (*models.Appointment, error) {
	if identity.SubjectID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	appointment, err := s.appointments.FindForPatient(ctx, appointmentID, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Appointment not found")
		}
		return nil, apperror.Internal(err)
	}
	return appointment, nil
}

// HospitalReport returns the caller's hospital with its latest appointments.
func (s *AppointmentService) HospitalReport(ctx context.Context, identity models.Identity) (*HospitalReport, error) {
	if !identity.IsHospital() {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	hospital, err := s.hospitals.FindByOwner(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Hospital not found")
		}
		return nil, apperror.Internal(err)
	}

	appointments, err := s.appointments.ListForHospital(ctx, hospital.ID, repository.AppointmentQuery{Limit: HospitalReportLimit})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &HospitalReport{Hospital: hospital, Appointments: appointments}, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp, keeping only the UTC day.
func parseDate(value string) (time.Time, error) {
	if day, err := time.ParseInLocation(models.DateLayout, value, time.UTC); err == nil {
		return day, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

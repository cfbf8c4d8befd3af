package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment. The column accepts any value;
// only the constants below carry meaning for patient notifications.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
)

// DateLayout is the wire format of an appointment date.
const DateLayout = "2006-01-02"

// Appointment is a patient's booking with a doctor at a hospital for a date and time slot.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index;not null" json:"patientId"`
	HospitalID      string            `gorm:"size:36;index;not null" json:"hospitalId"`
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctorId"`
	AppointmentDate time.Time         `gorm:"type:date;index;not null" json:"appointmentDate"`
	TimeSlot        string            `gorm:"size:32;not null" json:"timeSlot"`
	Status          AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations (not always preloaded)
	Patient  *User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

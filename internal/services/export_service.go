package services

import (
	"context"
	"strings"

	"hospital-management-server/internal/apperror"
)

// DoctorExport is a doctor row of the hospitals export.
type DoctorExport struct {
	DoctorName      string  `json:"doctorName"`
	Specialization  string  `json:"specialization"`
	Experience      int     `json:"experience"`
	Qualification   string  `json:"qualification"`
	ConsultationFee float64 `json:"consultationFee"`
	AvailableSlots  string  `json:"availableSlots"`
	IsAvailable     bool    `json:"isAvailable"`
}

// HospitalExport is a hospital with its administrator contact and doctors.
type HospitalExport struct {
	HospitalName    string         `json:"hospitalName"`
	AdminName       string         `json:"adminName,omitempty"`
	AdminEmail      string         `json:"adminEmail,omitempty"`
	AdminPhone      string         `json:"adminPhone,omitempty"`
	HospitalAddress string         `json:"hospitalAddress"`
	HospitalPhone   string         `json:"hospitalPhone"`
	HospitalEmail   string         `json:"hospitalEmail"`
	City            string         `json:"city,omitempty"`
	Specialties     string         `json:"specialties"`
	Rating          float64        `json:"rating"`
	TotalReviews    int            `json:"totalReviews"`
	Doctors         []DoctorExport `json:"doctors"`
}

type HospitalsDoctorsExport struct {
	TotalHospitals int              `json:"totalHospitals"`
	TotalDoctors   int              `json:"totalDoctors"`
	Data           []HospitalExport `json:"data"`
}

type ExportService struct {
	hospitals HospitalStore
	doctors   DoctorStore
}

func NewExportService(hospitals HospitalStore, doctors DoctorStore) *ExportService {
	return &ExportService{hospitals: hospitals, doctors: doctors}
}

// HospitalsDoctors flattens every hospital and its doctors for export.
func (s *ExportService) HospitalsDoctors(ctx context.Context) (*HospitalsDoctorsExport, error) {
	hospitals, err := s.hospitals.ListWithOwners(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	doctors, err := s.doctors.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byHospital := make(map[string][]DoctorExport, len(hospitals))
	for _, d := range doctors {
		byHospital[d.HospitalID] = append(byHospital[d.HospitalID], DoctorExport{
			DoctorName:      d.Name,
			Specialization:  d.Specialization,
			Experience:      d.Experience,
			Qualification:   d.Qualification,
			ConsultationFee: d.ConsultationFee,
			AvailableSlots:  strings.Join(d.AvailableSlots, ", "),
			IsAvailable:     d.IsAvailable == nil || *d.IsAvailable,
		})
	}

	data := make([]HospitalExport, 0, len(hospitals))
	for _, h := range hospitals {
		row := HospitalExport{
			HospitalName:    h.Name,
			HospitalAddress: h.Address,
			HospitalPhone:   h.Phone,
			HospitalEmail:   h.Email,
			City:            h.City,
			Specialties:     strings.Join(h.Specialties, ", "),
			Rating:          h.Rating,
			TotalReviews:    h.TotalReviews,
			Doctors:         byHospital[h.ID],
		}
		if row.Doctors == nil {
			row.Doctors = []DoctorExport{}
		}
		if h.Owner != nil {
			row.AdminName = h.Owner.Name
			row.AdminEmail = h.Owner.Email
			row.AdminPhone = h.Owner.Phone
		}
		data = append(data, row)
	}

	return &HospitalsDoctorsExport{
		TotalHospitals: len(hospitals),
		TotalDoctors:   len(doctors),
		Data:           data,
	}, nil
}

package services

import (
	"context"
	"testing"

	"hospital-management-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_HospitalsDoctors(t *testing.T) {
	ctx := context.Background()
	hospitals := newMemHospitals()
	doctors := &memDoctors{}
	service := NewExportService(hospitals, doctors)

	withDoctors := hospitals.add(newID(), "Alpha Care")
	hospitals.hospitals[withDoctors.ID].Owner = &models.User{Name: "Admin A", Email: "a@example.com", Phone: "555"}
	hospitals.hospitals[withDoctors.ID].Specialties = []string{"Cardiology", "Oncology"}
	hospitals.add(newID(), "Beta Clinic")

	unavailable := false
	require.NoError(t, doctors.Create(ctx, &models.Doctor{HospitalID: withDoctors.ID, Name: "Dr. Rao", AvailableSlots: []string{"09:00", "10:00"}}))
	require.NoError(t, doctors.Create(ctx, &models.Doctor{HospitalID: withDoctors.ID, Name: "Dr. Sen", IsAvailable: &unavailable}))

	export, err := service.HospitalsDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, export.TotalHospitals)
	assert.Equal(t, 2, export.TotalDoctors)
	require.Len(t, export.Data, 2)

	alpha := export.Data[0]
	assert.Equal(t, "Alpha Care", alpha.HospitalName)
	assert.Equal(t, "Admin A", alpha.AdminName)
	assert.Equal(t, "Cardiology, Oncology", alpha.Specialties)
	require.Len(t, alpha.Doctors, 2)
	assert.Equal(t, "09:00, 10:00", alpha.Doctors[0].AvailableSlots)
	assert.True(t, alpha.Doctors[0].IsAvailable)
	assert.False(t, alpha.Doctors[1].IsAvailable)

	assert.Empty(t, export.Data[1].AdminName)
	assert.NotNil(t, export.Data[1].Doctors)
	assert.Empty(t, export.Data[1].Doctors)
}

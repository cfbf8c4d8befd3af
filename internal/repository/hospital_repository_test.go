package repository

import (
	"context"
	"testing"

	"hospital-management-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalRepository_UpsertByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "Admin", models.RoleHospital)

	created, err := repo.UpsertByOwner(ctx, &models.Hospital{
		UserID:      owner.ID,
		Name:        "City Care",
		Address:     "12 Park Street",
		Phone:       "555-0101",
		Email:       "info@citycare.test",
		Specialties: []string{"Cardiology"},
		City:        "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Care", created.Name)

	updated, err := repo.UpsertByOwner(ctx, &models.Hospital{
		UserID:      owner.ID,
		Name:        "City Care Plus",
		Address:     "12 Park Street",
		Phone:       "555-0101",
		Email:       "info@citycare.test",
		Specialties: []string{"Cardiology", "Oncology"},
		City:        "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "City Care Plus", updated.Name)
	assert.Equal(t, []string{"Cardiology", "Oncology"}, []string(updated.Specialties))

	var count int64
	require.NoError(t, db.Model(&models.Hospital{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHospitalRepository_FindByOwnerNotFound(t *testing.T) {
	repo := NewHospitalRepository(newTestDB(t))

	_, err := repo.FindByOwner(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHospitalRepository_UpdateRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)
	ctx := context.Background()
	hospital := seedHospital(t, db, "owner-1", "General")

	require.NoError(t, repo.UpdateRating(ctx, hospital.ID, 3.5, 2))

	stored, err := repo.FindByID(ctx, hospital.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, stored.Rating)
	assert.Equal(t, 2, stored.TotalReviews)

	assert.NoError(t, repo.UpdateRating(ctx, "unknown", 1, 1))
}

func TestHospitalRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)
	ctx := context.Background()

	heart := seedHospital(t, db, "owner-1", "Heart Institute")
	heart.Specialties = []string{"Cardiology"}
	heart.City = "Mumbai"
	heart.Rating = 4.5
	require.NoError(t, db.Save(heart).Error)

	bones := seedHospital(t, db, "owner-2", "Bone Clinic")
	bones.Specialties = []string{"Orthopedics"}
	bones.City = "Delhi"
	bones.Rating = 3.0
	require.NoError(t, db.Save(bones).Error)

	t.Run("free text matches specialties", func(t *testing.T) {
		found, err := repo.Search(ctx, HospitalSearch{Query: "cardio"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, heart.ID, found[0].ID)
	})

	t.Run("city filter", func(t *testing.T) {
		found, err := repo.Search(ctx, HospitalSearch{City: "delhi"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, bones.ID, found[0].ID)
	})

	t.Run("sort by rating descending", func(t *testing.T) {
		found, err := repo.Search(ctx, HospitalSearch{SortBy: "rating", Descending: true, Limit: 50})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, heart.ID, found[0].ID)
	})

	t.Run("sort by name ascending", func(t *testing.T) {
		found, err := repo.Search(ctx, HospitalSearch{SortBy: "name"})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, bones.ID, found[0].ID)
	})
}

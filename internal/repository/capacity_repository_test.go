package repository

import (
	"context"
	"testing"
	"time"

	"hospital-management-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCapacityRepository_UpsertBeds(t *testing.T) {
	db := newTestDB(t)
	repo := NewCapacityRepository(db)
	ctx := context.Background()

	none, err := repo.BedsForHospital(ctx, "hospital-1")
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := repo.UpsertBeds(ctx, &models.BedAvailability{
		HospitalID:  "hospital-1",
		GeneralBeds: models.BedCount{Total: 50, Available: 20},
		ICUBeds:     models.BedCount{Total: 10, Available: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 20, first.GeneralBeds.Available)

	second, err := repo.UpsertBeds(ctx, &models.BedAvailability{
		HospitalID:  "hospital-1",
		GeneralBeds: models.BedCount{Total: 50, Available: 60},
		ICUBeds:     models.BedCount{Total: 10, Available: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60, second.GeneralBeds.Available)
	assert.Equal(t, 0, second.ICUBeds.Available)

	var count int64
	require.NoError(t, db.Model(&models.BedAvailability{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCapacityRepository_UpsertBlood(t *testing.T) {
	db := newTestDB(t)
	repo := NewCapacityRepository(db)
	ctx := context.Background()

	_, err := repo.UpsertBlood(ctx, &models.BloodInventory{HospitalID: "hospital-1", BloodType: "O+", Units: 5})
	require.NoError(t, err)
	_, err = repo.UpsertBlood(ctx, &models.BloodInventory{HospitalID: "hospital-1", BloodType: "A-", Units: 3})
	require.NoError(t, err)
	updated, err := repo.UpsertBlood(ctx, &models.BloodInventory{HospitalID: "hospital-1", BloodType: "O+", Units: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Units)

	_, err = repo.UpsertBlood(ctx, &models.BloodInventory{HospitalID: "hospital-2", BloodType: "O+", Units: 1})
	require.NoError(t, err)

	inventory, err := repo.BloodForHospital(ctx, "hospital-1")
	require.NoError(t, err)
	require.Len(t, inventory, 2)
	assert.Equal(t, "A-", inventory[0].BloodType)
	assert.Equal(t, "O+", inventory[1].BloodType)
	assert.Equal(t, 12, inventory[1].Units)
}

func TestBloodBankRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBloodBankRepository(db)
	ctx := context.Background()

	banks := []models.BloodBankAvailability{
		{State: "Maharashtra", District: "Pune", BloodBankName: "Sassoon", BloodGroups: datatypes.NewJSONType(models.BloodGroupUnits{"O+": 4})},
		{State: "Maharashtra", District: "Pune", BloodBankName: "Jehangir", BloodGroups: datatypes.NewJSONType(models.BloodGroupUnits{"O+": 0})},
		{State: "Maharashtra", District: "Mumbai", BloodBankName: "KEM", BloodGroups: datatypes.NewJSONType(models.BloodGroupUnits{"A+": 2})},
	}
	for i := range banks {
		banks[i].LastUpdated = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Upsert(ctx, &banks[i]))
	}

	found, err := repo.Search(ctx, "pun", 50)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Jehangir", found[0].BloodBankName)
	assert.Equal(t, 4, found[1].UnitsOf("O+"))

	refreshed := models.BloodBankAvailability{
		State: "Maharashtra", District: "Pune", BloodBankName: "Sassoon",
		BloodGroups: datatypes.NewJSONType(models.BloodGroupUnits{"O+": 9}),
	}
	require.NoError(t, repo.Upsert(ctx, &refreshed))
	assert.Equal(t, banks[0].ID, refreshed.ID)

	all, err := repo.Search(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Mumbai", all[0].District)
}

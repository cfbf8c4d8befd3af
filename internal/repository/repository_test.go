package repository

import (
	"testing"

	"hospital-management-server/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), models.GormConfig())
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: uuid.NewString() + "@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedHospital(t *testing.T, db *gorm.DB, ownerID, name string) *models.Hospital {
	t.Helper()
	hospital := &models.Hospital{
		UserID:  ownerID,
		Name:    name,
		Address: "1 Main Road",
		Phone:   "555-0100",
		Email:   "desk@" + name + ".test",
	}
	require.NoError(t, db.Create(hospital).Error)
	return hospital
}

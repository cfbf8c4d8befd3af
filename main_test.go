package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/cache"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newFeedService(t *testing.T) (*services.BloodBankService, *gorm.DB) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), models.GormConfig())
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	svc := services.NewBloodBankService(repository.NewBloodBankRepository(db), cache.NewNoop(), time.Minute, zap.NewNop())
	return svc, db
}

func writeFeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestImportBloodBankFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("stores every record", func(t *testing.T) {
		svc, db := newFeedService(t)
		path := writeFeed(t, `[
			{"state":"Kerala","district":"Kochi","bloodBankName":"Lakeshore","bloodGroups":{"B+":3}},
			{"state":"Kerala","district":"Kochi","bloodBankName":"Amrita","source":"manual"}
		]`)

		count, err := importBloodBankFeed(ctx, svc, path)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var stored int64
		require.NoError(t, db.Model(&models.BloodBankAvailability{}).Count(&stored).Error)
		assert.EqualValues(t, 2, stored)
	})

	t.Run("names the invalid record", func(t *testing.T) {
		svc, db := newFeedService(t)
		path := writeFeed(t, `[
			{"state":"Kerala","district":"Kochi","bloodBankName":"Lakeshore"},
			{"state":"Kerala","district":"Kochi"}
		]`)

		count, err := importBloodBankFeed(ctx, svc, path)
		require.Error(t, err)
		assert.Equal(t, 1, count)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Contains(t, err.Error(), "record 2 is invalid")

		var stored int64
		require.NoError(t, db.Model(&models.BloodBankAvailability{}).Count(&stored).Error)
		assert.EqualValues(t, 1, stored)
	})

	t.Run("malformed file", func(t *testing.T) {
		svc, _ := newFeedService(t)
		_, err := importBloodBankFeed(ctx, svc, writeFeed(t, `{"not":"an array"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode feed")
	})

	t.Run("missing file", func(t *testing.T) {
		svc, _ := newFeedService(t)
		_, err := importBloodBankFeed(ctx, svc, filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read feed")
	})
}

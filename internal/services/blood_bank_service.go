package services

import (
	"context"
	"strings"
	"time"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/cache"
	"hospital-management-server/internal/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// BloodBankSearchLimit caps the banks read per availability query.
const BloodBankSearchLimit = 50

// BloodAvailability is the answer to a public blood availability query.
type BloodAvailability struct {
	BloodBanks  []models.BloodBankAvailability `json:"bloodBanks"`
	Total       int                            `json:"total"`
	LastUpdated *time.Time                     `json:"lastUpdated"`
}

// BloodBankRecord is one bank in an imported availability feed.
type BloodBankRecord struct {
	State         string                 `json:"state" validate:"required"`
	District      string                 `json:"district" validate:"required"`
	BloodBankName string                 `json:"bloodBankName" validate:"required"`
	Category      string                 `json:"category"`
	Address       string                 `json:"address"`
	ContactNumber string                 `json:"contactNumber"`
	BloodGroups   models.BloodGroupUnits `json:"bloodGroups"`
	Source        string                 `json:"source"`
}

type BloodBankService struct {
	banks BloodBankStore
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewBloodBankService(banks BloodBankStore, c cache.Cache, ttl time.Duration, log *zap.Logger) *BloodBankService {
	return &BloodBankService{banks: banks, cache: c, ttl: ttl, log: log}
}

// Availability lists banks whose district contains location, keeping only those that hold
// units of bloodGroup when one is given. Results are cached per query.
func (s *BloodBankService) Availability(ctx context.Context, location, bloodGroup string) (*BloodAvailability, error) {
	key := "blood-availability:" + strings.ToLower(location) + ":" + bloodGroup

	var cached BloodAvailability
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("Blood availability cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	banks, err := s.banks.Search(ctx, location, BloodBankSearchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if bloodGroup != "" {
		banks = withUnitsOf(banks, bloodGroup)
	}

	result := &BloodAvailability{BloodBanks: banks, Total: len(banks)}
	if len(banks) > 0 {
		lastUpdated := banks[0].LastUpdated
		result.LastUpdated = &lastUpdated
	}

	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.log.Warn("Blood availability cache write failed", zap.String("key", key), zap.Error(err))
	}
	return result, nil
}

func withUnitsOf(banks []models.BloodBankAvailability, group string) []models.BloodBankAvailability {
	filtered := make([]models.BloodBankAvailability, 0, len(banks))
	for i := range banks {
		if banks[i].UnitsOf(group) > 0 {
			filtered = append(filtered, banks[i])
		}
	}
	return filtered
}

// Import upserts a feed of blood bank records keyed by district and bank name, stamping each
// with the import time. It returns the number of records stored.
func (s *BloodBankService) Import(ctx context.Context, records []BloodBankRecord) (int, error) {
	now := time.Now().UTC()
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			return i, apperror.FromValidator(err)
		}
		groups := models.BloodGroupUnits{}
		for _, bloodType := range models.BloodTypes {
			groups[bloodType] = record.BloodGroups[bloodType]
		}
		source := record.Source
		if source == "" {
			source = "eRaktKosh"
		}

		bank := &models.BloodBankAvailability{
			State:         record.State,
			District:      record.District,
			BloodBankName: record.BloodBankName,
			Category:      record.Category,
			Address:       record.Address,
			ContactNumber: record.ContactNumber,
			BloodGroups:   datatypes.NewJSONType(groups),
			LastUpdated:   now,
			Source:        source,
		}
		if err := s.banks.Upsert(ctx, bank); err != nil {
			return i, apperror.Internal(err)
		}
		s.log.Debug("Blood bank stored", zap.String("district", bank.District), zap.String("name", bank.BloodBankName))
	}
	return len(records), nil
}

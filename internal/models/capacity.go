package models

import (
	"time"

	"gorm.io/datatypes"
)

// BloodTypes lists the accepted blood groups.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// BedCount is a total/available pair for one bed category.
type BedCount struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// BedAvailability holds the bed counts of one hospital.
type BedAvailability struct {
	BaseModel
	HospitalID  string   `gorm:"size:36;uniqueIndex;not null" json:"hospitalId"`
	GeneralBeds BedCount `gorm:"embedded;embeddedPrefix:general_" json:"generalBeds"`
	ICUBeds     BedCount `gorm:"embedded;embeddedPrefix:icu_" json:"icuBeds"`
}

// BloodInventory holds the units of one blood type at one hospital.
type BloodInventory struct {
	BaseModel
	HospitalID string `gorm:"size:36;not null;uniqueIndex:idx_blood_hospital_type" json:"hospitalId"`
	BloodType  string `gorm:"size:3;not null;uniqueIndex:idx_blood_hospital_type" json:"bloodType"`
	Units      int    `gorm:"not null" json:"units"`
}

// BloodGroupUnits maps a blood group to the units in stock.
type BloodGroupUnits map[string]int

// BloodBankAvailability is a blood bank's public stock, imported from an external source.
type BloodBankAvailability struct {
	BaseModel
	State         string                             `gorm:"size:100;not null" json:"state"`
	District      string                             `gorm:"size:100;not null;uniqueIndex:idx_bank_district_name" json:"district"`
	BloodBankName string                             `gorm:"size:255;not null;uniqueIndex:idx_bank_district_name" json:"bloodBankName"`
	Category      string                             `gorm:"size:50" json:"category,omitempty"` // Government/Private/Red Cross
	Address       string                             `gorm:"size:255" json:"address,omitempty"`
	ContactNumber string                             `gorm:"size:50" json:"contactNumber,omitempty"`
	BloodGroups   datatypes.JSONType[BloodGroupUnits] `json:"bloodGroups"`
	LastUpdated   time.Time                          `json:"lastUpdated"`
	Source        string                             `gorm:"size:50;default:'eRaktKosh'" json:"source"`
}

// UnitsOf returns the stock of a blood group, zero when unknown.
func (b *BloodBankAvailability) UnitsOf(group string) int {
	return b.BloodGroups.Data()[group]
}

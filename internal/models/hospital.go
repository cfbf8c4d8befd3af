package models

import "gorm.io/datatypes"

// Hospital is the profile owned by exactly one hospital-role user.
type Hospital struct {
	BaseModel
	UserID       string                      `gorm:"size:36;uniqueIndex;not null" json:"userId,omitempty"`
	Name         string                      `gorm:"size:255;not null" json:"name"`
	Address      string                      `gorm:"size:255;not null" json:"address"`
	Phone        string                      `gorm:"size:30;not null" json:"phone"`
	Email        string                      `gorm:"size:255;not null" json:"email"`
	Description  string                      `gorm:"type:text" json:"description,omitempty"`
	Specialties  datatypes.JSONSlice[string] `json:"specialties"`
	City         string                      `gorm:"size:100;index" json:"city,omitempty"`
	Rating       float64                     `gorm:"default:0" json:"rating"`
	TotalReviews int                         `gorm:"default:0" json:"totalReviews"`

	Owner *User `gorm:"foreignKey:UserID" json:"-"`
}

// Doctor works at a single hospital.
type Doctor struct {
	BaseModel
	HospitalID      string                      `gorm:"size:36;index;not null" json:"hospitalId"`
	Name            string                      `gorm:"size:100;not null" json:"name"`
	Specialization  string                      `gorm:"size:100;not null" json:"specialization"`
	Experience      int                         `gorm:"not null" json:"experience"`
	Qualification   string                      `gorm:"size:255;not null" json:"qualification"`
	ConsultationFee float64                     `gorm:"not null" json:"consultationFee"`
	AvailableSlots  datatypes.JSONSlice[string] `json:"availableSlots"` // e.g. ["09:00", "10:00"]
	IsAvailable     *bool                       `gorm:"default:true" json:"isAvailable"`
}

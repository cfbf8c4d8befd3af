package models

// Review is a patient's rating of a hospital.
type Review struct {
	BaseModel
	PatientID  string `gorm:"size:36;index;not null" json:"patientId"`
	HospitalID string `gorm:"size:36;index;not null" json:"hospitalId"`
	Rating     int    `gorm:"not null" json:"rating"` // 1..5
	Comment    string `gorm:"type:text;not null" json:"comment"`
	Response   string `gorm:"type:text" json:"response,omitempty"` // hospital's reply

	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

package models

import "gorm.io/datatypes"

// NotificationType categorises an inbox entry
type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeGeneral     NotificationType = "general"
)

// Notification is an entry in a user's inbox. Only the read flag ever changes.
type Notification struct {
	BaseModel
	UserID  string           `gorm:"size:36;index;not null" json:"userId"`
	Title   string           `gorm:"size:255;not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	Type    NotificationType `gorm:"size:20;default:'general'" json:"type"`
	Read    bool             `gorm:"column:is_read;default:false" json:"read"`
	Data    datatypes.JSON   `json:"data,omitempty"` // e.g. {"appointmentId": "..."}
}

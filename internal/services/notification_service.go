package services

import (
	"context"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// NotificationListLimit caps the inbox listing.
const NotificationListLimit = 20

// NotificationInput describes an inbox entry to create.
type NotificationInput struct {
	UserID  string                  `json:"userId" validate:"required"`
	Title   string                  `json:"title" validate:"required"`
	Message string                  `json:"message" validate:"required"`
	Type    models.NotificationType `json:"type" validate:"omitempty,oneof=appointment general"`
	Data    map[string]interface{}  `json:"data"`
}

type NotificationService struct {
	notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Notify stores an inbox entry. Callers treat a failure as non-fatal.
func (s *NotificationService) Notify(ctx context.Context, in NotificationInput) error {
	_, err := s.create(ctx, in)
	return err
}

// Create stores an inbox entry for any user on behalf of an authenticated caller.
func (s *NotificationService) Create(ctx context.Context, identity models.Identity, in NotificationInput) (*models.Notification, error) {
	if identity.SubjectID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}
	notification, err := s.create(ctx, in)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notification, nil
}

func (s *NotificationService) create(ctx context.Context, in NotificationInput) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  in.UserID,
		Title:   in.Title,
		Message: in.Message,
		Type:    in.Type,
	}
	if notification.Type == "" {
		notification.Type = models.NotificationTypeGeneral
	}
	if in.Data != nil {
		payload, err := json.Marshal(in.Data)
		if err != nil {
			return nil, err
		}
		notification.Data = datatypes.JSON(payload)
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// ListForUser returns the caller's most recent notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, identity models.Identity) ([]models.Notification, error) {
	if identity.SubjectID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	notifications, err := s.notifications.ListForUser(ctx, identity.SubjectID, NotificationListLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

// MarkRead flags one of the caller's notifications as read. Unknown or foreign ids succeed silently.
func (s *NotificationService) MarkRead(ctx context.Context, identity models.Identity, notificationID string) error {
	if identity.SubjectID == "" {
		return apperror.Unauthorized("Unauthorized")
	}
	if notificationID == "" {
		return apperror.Validation("Notification ID required")
	}
	if err := s.notifications.MarkRead(ctx, notificationID, identity.SubjectID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

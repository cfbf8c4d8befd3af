package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Notifications *services.NotificationService
	Log           *zap.Logger
}

func NewNotificationHandler(notifications *services.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications, Log: log}
}

// MarkReadRequest identifies the notification to flag as read.
type MarkReadRequest struct {
	NotificationID string `json:"notificationId"`
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	notifications, err := h.Notifications.ListForUser(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Notifications retrieved successfully", gin.H{"notifications": notifications})
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req services.NotificationInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	notification, err := h.Notifications.Create(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Created(c, "Notification created", gin.H{"notification": notification})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	if err := h.Notifications.MarkRead(c.Request.Context(), identity, req.NotificationID); err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Notification marked as read", nil)
}

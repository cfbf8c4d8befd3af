package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments *services.AppointmentService
	Log          *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *services.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Log: log}
}

// CreateAppointment books an appointment for the calling patient.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req services.BookInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	appointment, err := h.Appointments.Book(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", gin.H{"appointment": appointment})
}

// GetAppointments lists the caller's appointments. Query: status, date (YYYY-MM-DD), search.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	appointments, err := h.Appointments.List(c.Request.Context(), identity, services.ListFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Search: c.Query("search"),
	})
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}

	utils.Success(c, "Appointments retrieved successfully", gin.H{"appointments": appointments})
}

// UpdateAppointmentStatus lets the owning hospital change an appointment's status and notes.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req services.UpdateStatusInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	appointment, err := h.Appointments.UpdateStatus(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", gin.H{"appointment": appointment})
}

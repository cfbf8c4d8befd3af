package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves the data behind printable receipts and hospital reports.
type ReportHandler struct {
	Appointments *services.AppointmentService
	Log          *zap.Logger
}

func NewReportHandler(appointments *services.AppointmentService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{Appointments: appointments, Log: log}
}

// GetReport answers ?type=patient&appointmentId= with a receipt and ?type=hospital with the
// hospital report. Any other combination is a bad request.
func (h *ReportHandler) GetReport(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	ctx := c.Request.Context()

	switch {
	case c.Query("type") == "patient" && c.Query("appointmentId") != "":
		appointment, err := h.Appointments.Receipt(ctx, identity, c.Query("appointmentId"))
		if err != nil {
			utils.RespondError(c, h.Log, err)
			return
		}
		utils.Success(c, "Receipt retrieved successfully", gin.H{"appointment": appointment})
	case c.Query("type") == "hospital" && identity.Role == models.RoleHospital:
		report, err := h.Appointments.HospitalReport(ctx, identity)
		if err != nil {
			utils.RespondError(c, h.Log, err)
			return
		}
		utils.Success(c, "Report retrieved successfully", report)
	default:
		utils.BadRequest(c, "Invalid request")
	}
}

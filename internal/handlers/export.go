package handlers

import (
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportHandler struct {
	Export *services.ExportService
	Log    *zap.Logger
}

func NewExportHandler(export *services.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{Export: export, Log: log}
}

func (h *ExportHandler) HospitalsDoctors(c *gin.Context) {
	export, err := h.Export.HospitalsDoctors(c.Request.Context())
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Export generated", export)
}

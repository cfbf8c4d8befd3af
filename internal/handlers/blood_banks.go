package handlers

import (
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BloodBankHandler struct {
	BloodBanks *services.BloodBankService
	Log        *zap.Logger
}

func NewBloodBankHandler(bloodBanks *services.BloodBankService, log *zap.Logger) *BloodBankHandler {
	return &BloodBankHandler{BloodBanks: bloodBanks, Log: log}
}

// GetAvailability lists blood banks. Query: location (district), bloodGroup.
func (h *BloodBankHandler) GetAvailability(c *gin.Context) {
	availability, err := h.BloodBanks.Availability(c.Request.Context(), c.Query("location"), c.Query("bloodGroup"))
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Blood availability retrieved", availability)
}

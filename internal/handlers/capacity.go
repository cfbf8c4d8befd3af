package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CapacityHandler updates the bed counts and blood inventory of the caller's hospital.
type CapacityHandler struct {
	Capacity *services.CapacityService
	Log      *zap.Logger
}

func NewCapacityHandler(capacity *services.CapacityService, log *zap.Logger) *CapacityHandler {
	return &CapacityHandler{Capacity: capacity, Log: log}
}

func (h *CapacityHandler) UpsertBeds(c *gin.Context) {
	var req services.BedInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	beds, err := h.Capacity.UpsertBeds(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Bed availability updated", gin.H{"bedAvailability": beds})
}

func (h *CapacityHandler) UpsertBlood(c *gin.Context) {
	var req services.BloodInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	blood, err := h.Capacity.UpsertBlood(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Blood inventory updated", gin.H{"bloodInventory": blood})
}

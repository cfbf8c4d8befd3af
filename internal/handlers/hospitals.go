package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HospitalHandler serves hospital profiles, the public directory and doctors.
type HospitalHandler struct {
	Hospitals *services.HospitalService
	Log       *zap.Logger
}

func NewHospitalHandler(hospitals *services.HospitalService, log *zap.Logger) *HospitalHandler {
	return &HospitalHandler{Hospitals: hospitals, Log: log}
}

// Search lists hospitals. Query: q, city, specialization, sortBy, sortOrder.
func (h *HospitalHandler) Search(c *gin.Context) {
	hospitals, err := h.Hospitals.Search(c.Request.Context(), services.SearchInput{
		Query:          c.Query("q"),
		City:           c.Query("city"),
		Specialization: c.Query("specialization"),
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
	})
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Hospitals retrieved successfully", gin.H{"hospitals": hospitals})
}

func (h *HospitalHandler) GetHospital(c *gin.Context) {
	detail, err := h.Hospitals.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Hospital retrieved successfully", detail)
}

// GetProfile returns the caller's hospital profile; hospital is null when none exists.
func (h *HospitalHandler) GetProfile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	hospital, err := h.Hospitals.Profile(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Hospital profile retrieved", gin.H{"hospital": hospital})
}

func (h *HospitalHandler) UpsertProfile(c *gin.Context) {
	var req services.HospitalProfileInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	hospital, err := h.Hospitals.UpsertProfile(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Hospital profile updated", gin.H{"hospital": hospital})
}

func (h *HospitalHandler) AddDoctor(c *gin.Context) {
	var req services.DoctorInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	doctor, err := h.Hospitals.AddDoctor(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Created(c, "Doctor added successfully", gin.H{"doctor": doctor})
}

func (h *HospitalHandler) GetDoctors(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	doctors, err := h.Hospitals.ListDoctors(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Doctors retrieved successfully", gin.H{"doctors": doctors})
}

package handlers

import (
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
	Log     *zap.Logger
}

func NewReviewHandler(reviews *services.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Log: log}
}

// SubmitReview stores a patient's review and refreshes the hospital rating.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewInput
	if !utils.BindJSON(c, &req) {
		return
	}

	identity, _ := middleware.GetIdentity(c)
	review, err := h.Reviews.SubmitReview(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Created(c, "Review submitted successfully", gin.H{"review": review})
}

// GetReviews lists the reviews of ?hospitalId=, newest first.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListByHospital(c.Request.Context(), c.Query("hospitalId"))
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Reviews retrieved successfully", gin.H{"reviews": reviews})
}

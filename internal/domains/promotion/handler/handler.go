package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/promotion/model"
	"sportcenter-backend/internal/domains/promotion/service"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

type PromotionHandler struct {
	promotionService service.PromotionService
}

func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

func (h *PromotionHandler) List(c *gin.Context) {
	promotions, err := h.promotionService.ListPromotions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list promotions", err)
		response.InternalServerError(c, "Failed to list promotions")
		return
	}
	response.Success(c, http.StatusOK, promotions)
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req model.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	promotion, err := h.promotionService.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		respondPromotionError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, promotion)
}

func (h *PromotionHandler) Update(c *gin.Context) {
	promotionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req model.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	promotion, err := h.promotionService.UpdatePromotion(c.Request.Context(), promotionID, req)
	if err != nil {
		respondPromotionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, promotion)
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	promotionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.promotionService.DeletePromotion(c.Request.Context(), promotionID); err != nil {
		respondPromotionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promotionId": promotionID, "deleted": true})
}

func respondPromotionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPromotionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrPromotionCodeTaken):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Promotion operation failed", err)
		response.InternalServerError(c, "Failed to process promotion request")
	}
}

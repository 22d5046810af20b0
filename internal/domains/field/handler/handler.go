package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/field/model"
	"sportcenter-backend/internal/domains/field/service"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

// =====================================================
// FIELD HANDLER
// =====================================================

type FieldHandler struct {
	fieldService service.FieldService
}

func NewFieldHandler(fieldService service.FieldService) *FieldHandler {
	return &FieldHandler{fieldService: fieldService}
}

func (h *FieldHandler) List(c *gin.Context) {
	var q model.ListFieldsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	q.Normalize()

	fields, total, err := h.fieldService.ListFields(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to list fields", err)
		response.InternalServerError(c, "Failed to list fields")
		return
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	response.SuccessWithMeta(c, http.StatusOK, fields, &response.Meta{
		Page:        q.Page,
		Limit:       q.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: q.Page < totalPages,
		HasPrevPage: q.Page > 1,
	})
}

func (h *FieldHandler) Get(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid field ID")
		return
	}

	field, err := h.fieldService.GetField(c.Request.Context(), fieldID)
	if err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusOK, field)
}

func (h *FieldHandler) Availability(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid field ID")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
	}

	availability, err := h.fieldService.GetAvailability(c.Request.Context(), fieldID, date)
	if err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusOK, availability)
}

// =====================================================
// ADMIN SURFACE
// =====================================================

func (h *FieldHandler) Create(c *gin.Context) {
	var req model.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	field, err := h.fieldService.CreateField(c.Request.Context(), req)
	if err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, field)
}

func (h *FieldHandler) Update(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid field ID")
		return
	}

	var req model.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	field, err := h.fieldService.UpdateField(c.Request.Context(), fieldID, req)
	if err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusOK, field)
}

func (h *FieldHandler) Delete(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid field ID")
		return
	}

	if err := h.fieldService.DeleteField(c.Request.Context(), fieldID); err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fieldId": fieldID, "deleted": true})
}

func (h *FieldHandler) UploadImage(c *gin.Context) {
	fieldID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid field ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read image file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.BadRequest(c, "Unable to read image file")
		return
	}

	url, err := h.fieldService.UploadImage(c.Request.Context(), fieldID, data)
	if err != nil {
		respondFieldError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fieldId": fieldID, "imageUrl": url})
}

func respondFieldError(c *gin.Context, err error) {
	var fieldErr *model.FieldError
	code := "FIELD_ERROR"
	message := "Failed to process field request"
	if errors.As(err, &fieldErr) {
		code = fieldErr.Code
		message = fieldErr.Message
	}

	switch {
	case errors.Is(err, model.ErrFieldNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, message)
	case errors.Is(err, model.ErrInvalidImage):
		response.ErrorResponse(c, http.StatusBadRequest, code, message)
	case errors.Is(err, model.ErrStorageUnavailable):
		response.ErrorResponse(c, http.StatusServiceUnavailable, code, message)
	default:
		logger.Error("Field operation failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, code, message)
	}
}

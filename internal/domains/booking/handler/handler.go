package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/booking/model"
	"sportcenter-backend/internal/domains/booking/service"
	fieldmodel "sportcenter-backend/internal/domains/field/model"
	"sportcenter-backend/internal/shared/middleware"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

// =====================================================
// BOOKING HANDLER
// =====================================================

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var q model.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	q.Normalize()

	bookings, total, err := h.bookingService.ListUserBookings(c.Request.Context(), userID, q)
	if err != nil {
		response.InternalServerError(c, "Failed to list bookings")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, bookings, paginationMeta(q.Page, q.Limit, total))
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	detail, err := h.bookingService.GetBooking(c.Request.Context(), userID, bookingID, middleware.IsAdmin(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), userID, bookingID, middleware.IsAdmin(c)); err != nil {
		respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookingId": bookingID, "status": model.BookingStatusCancelled})
}

// =====================================================
// ADMIN SURFACE
// =====================================================

func (h *BookingHandler) ListAll(c *gin.Context) {
	var q model.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	q.Normalize()

	bookings, total, err := h.bookingService.ListAllBookings(c.Request.Context(), q)
	if err != nil {
		response.InternalServerError(c, "Failed to list bookings")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, bookings, paginationMeta(q.Page, q.Limit, total))
}

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.bookingService.GetStats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to compute booking stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *BookingHandler) Revenue(c *gin.Context) {
	from, to, err := parseReportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.bookingService.GetBranchRevenue(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build revenue report", err)
		response.InternalServerError(c, "Failed to build revenue report")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"from":     from.Format("2006-01-02"),
		"to":       to.Format("2006-01-02"),
		"branches": report,
	})
}

// parseReportRange defaults to the last 30 days when the range is absent.
func parseReportRange(fromStr, toStr string) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be YYYY-MM-DD")
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be YYYY-MM-DD")
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not precede from")
	}
	return from, to, nil
}

func paginationMeta(page, limit, total int) *response.Meta {
	totalPages := (total + limit - 1) / limit
	return &response.Meta{
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

func respondBookingError(c *gin.Context, err error) {
	var bookErr *model.BookingError
	code := "BOOKING_ERROR"
	message := "Failed to process booking"
	if errors.As(err, &bookErr) {
		code = bookErr.Code
		message = bookErr.Message
	}

	switch {
	case errors.Is(err, fieldmodel.ErrFieldNotFound):
		response.NotFound(c, "Field not found")
	case errors.Is(err, model.ErrBookingNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, message)
	case errors.Is(err, model.ErrSlotTaken):
		response.ErrorResponse(c, http.StatusConflict, code, message)
	case errors.Is(err, model.ErrInvalidTimeRange), errors.Is(err, model.ErrNotCancellable):
		response.ErrorResponse(c, http.StatusBadRequest, code, message)
	case errors.Is(err, model.ErrForbiddenBooking):
		response.ErrorResponse(c, http.StatusForbidden, code, message)
	default:
		logger.Error("Booking operation failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, code, message)
	}
}

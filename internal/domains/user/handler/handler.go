package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/user/model"
	"sportcenter-backend/internal/domains/user/service"
	"sportcenter-backend/internal/shared/middleware"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func respondAuthError(c *gin.Context, err error) {
	var userErr *model.UserError
	code := "USER_ERROR"
	message := "Failed to process request"
	if errors.As(err, &userErr) {
		code = userErr.Code
		message = userErr.Message
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, code, message)
	case errors.Is(err, model.ErrEmailTaken):
		response.ErrorResponse(c, http.StatusConflict, code, message)
	case errors.Is(err, model.ErrUserNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, message)
	default:
		logger.Error("Auth operation failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, code, message)
	}
}

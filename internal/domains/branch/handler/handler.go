package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/branch/model"
	"sportcenter-backend/internal/domains/branch/service"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

type BranchHandler struct {
	branchService service.BranchService
}

func NewBranchHandler(branchService service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list branches", err)
		response.InternalServerError(c, "Failed to list branches")
		return
	}
	response.Success(c, http.StatusOK, branches)
}

func (h *BranchHandler) Get(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), branchID)
	if err != nil {
		respondBranchError(c, err)
		return
	}
	response.Success(c, http.StatusOK, branch)
}

func (h *BranchHandler) Create(c *gin.Context) {
	var req model.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		respondBranchError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, branch)
}

func (h *BranchHandler) Update(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	var req model.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), branchID, req)
	if err != nil {
		respondBranchError(c, err)
		return
	}
	response.Success(c, http.StatusOK, branch)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), branchID); err != nil {
		respondBranchError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"branchId": branchID, "deleted": true})
}

func respondBranchError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrBranchNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	logger.Error("Branch operation failed", err)
	response.InternalServerError(c, "Failed to process branch request")
}

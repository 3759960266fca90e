package controller

import (
	"context"
	"maintdesk-backend/models"
	"maintdesk-backend/services"
	"maintdesk-backend/utils/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ComplaintController struct {
	ctx              context.Context
	complaintService services.ComplaintServiceInterface
	logger           logger.Logger
	validator        *validator.Validate
}

func NewComplaintController(ctx context.Context, complaintService services.ComplaintServiceInterface, logger logger.Logger) *ComplaintController {
	return &ComplaintController{
		ctx:              ctx,
		complaintService: complaintService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// Create handles POST /api/v1/complaints
func (h *ComplaintController) Create(c *gin.Context) {
	var req models.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: formatValidationErrors(err),
			},
		})
		return
	}

	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Complaint created successfully",
		Data:    complaint,
	})
}

// List handles GET /api/v1/complaints
func (h *ComplaintController) List(c *gin.Context) {
	filter := &models.ComplaintFilter{
		Query:    c.Query("query"),
		Status:   models.ComplaintStatus(c.Query("status")),
		Priority: models.ComplaintPriority(c.Query("priority")),
	}

	complaints, err := h.complaintService.SearchComplaints(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Complaints retrieved successfully",
		Data: map[string]interface{}{
			"complaints": complaints,
			"total":      len(complaints),
		},
	})
}

// Get handles GET /api/v1/complaints/:id
func (h *ComplaintController) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	complaint, err := h.complaintService.GetComplaintByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Complaint retrieved successfully",
		Data:    complaint,
	})
}

// Update handles PATCH /api/v1/complaints/:id
func (h *ComplaintController) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: formatValidationErrors(err),
			},
		})
		return
	}

	complaint, err := h.complaintService.UpdateComplaint(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Complaint updated successfully",
		Data:    complaint,
	})
}

func (h *ComplaintController) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid complaint id",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: "id must be a positive integer",
				Field:   "id",
			},
		})
		return 0, false
	}
	return id, true
}

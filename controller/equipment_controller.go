package controller

import (
	"context"
	"maintdesk-backend/models"
	"maintdesk-backend/services"
	"maintdesk-backend/utils/logger"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type EquipmentController struct {
	ctx              context.Context
	equipmentService services.EquipmentServiceInterface
	ingestService    services.IngestServiceInterface
	logger           logger.Logger
	validator        *validator.Validate
}

func NewEquipmentController(ctx context.Context, equipmentService services.EquipmentServiceInterface, ingestService services.IngestServiceInterface, logger logger.Logger) *EquipmentController {
	return &EquipmentController{
		ctx:              ctx,
		equipmentService: equipmentService,
		ingestService:    ingestService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// formatValidationErrors formats validation errors into readable messages
func formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "min":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters/items")
			case "max":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters/items")
			case "gte":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param())
			case "oneof":
				errorMessages = append(errorMessages, fieldError.Field()+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	return strings.Join(errorMessages, "; ")
}

// Register handles POST /api/v1/equipment
func (h *EquipmentController) Register(c *gin.Context) {
	var req models.RegisterEquipmentRequest
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

	equipment, err := h.equipmentService.RegisterEquipment(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Equipment registered successfully",
		Data:    equipment,
	})
}

// List handles GET /api/v1/equipment
func (h *EquipmentController) List(c *gin.Context) {
	filter := &models.EquipmentFilter{
		Query:  c.Query("query"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	equipment, err := h.equipmentService.SearchEquipment(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Equipment retrieved successfully",
		Data: map[string]interface{}{
			"equipment": equipment,
			"total":     len(equipment),
		},
	})
}

// GetTypes handles GET /api/v1/equipment/types
func (h *EquipmentController) GetTypes(c *gin.Context) {
	types, err := h.equipmentService.DistinctTypes(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Equipment types retrieved successfully",
		Data:    types,
	})
}

// Get handles GET /api/v1/equipment/:id
func (h *EquipmentController) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	equipment, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Equipment retrieved successfully",
		Data:    equipment,
	})
}

// Scan handles POST /api/v1/equipment/scan
func (h *EquipmentController) Scan(c *gin.Context) {
	var req models.ScanRequest
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

	candidate := h.ingestService.ResolveScanPayload(req.Payload)

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Scan payload resolved successfully",
		Data:    candidate,
	})
}

// AddMaintenance handles POST /api/v1/equipment/:id/maintenance
func (h *EquipmentController) AddMaintenance(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.AddMaintenanceRecordRequest
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

	equipment, err := h.equipmentService.AddMaintenanceRecord(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Maintenance record added successfully",
		Data:    equipment,
	})
}

// CompleteMaintenance handles POST /api/v1/equipment/:id/maintenance/complete
func (h *EquipmentController) CompleteMaintenance(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.CompleteMaintenanceRecordRequest
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

	equipment, err := h.equipmentService.CompleteMaintenanceRecord(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Maintenance record completed successfully",
		Data:    equipment,
	})
}

func (h *EquipmentController) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid equipment id",
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

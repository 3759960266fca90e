package controller

import (
	"context"
	"maintdesk-backend/models"
	"maintdesk-backend/services"
	"maintdesk-backend/utils/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ScheduleController struct {
	ctx             context.Context
	scheduleService services.ScheduleServiceInterface
	config          *models.Config
	logger          logger.Logger
	validator       *validator.Validate
}

func NewScheduleController(ctx context.Context, scheduleService services.ScheduleServiceInterface, config *models.Config, logger logger.Logger) *ScheduleController {
	return &ScheduleController{
		ctx:             ctx,
		scheduleService: scheduleService,
		config:          config,
		logger:          logger,
		validator:       validator.New(),
	}
}

// CreateEvent handles POST /api/v1/schedule/events
func (h *ScheduleController) CreateEvent(c *gin.Context) {
	var req models.ScheduleEventRequest
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

	event, err := h.scheduleService.ScheduleMaintenance(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Maintenance event scheduled successfully",
		Data:    event,
	})
}

// GetEvents handles GET /api/v1/schedule/events?date=YYYY-MM-DD
func (h *ScheduleController) GetEvents(c *gin.Context) {
	date, ok := h.parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	events, err := h.scheduleService.EventsOn(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Events retrieved successfully",
		Data: map[string]interface{}{
			"date":   date,
			"events": events,
			"total":  len(events),
		},
	})
}

// GetCalendar handles GET /api/v1/schedule/calendar?year=YYYY&month=M
func (h *ScheduleController) GetCalendar(c *gin.Context) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if yearParam := c.Query("year"); yearParam != "" {
		y, err := strconv.Atoi(yearParam)
		if err != nil {
			h.writeBadDateParam(c, "year must be a number")
			return
		}
		year = y
	}
	if monthParam := c.Query("month"); monthParam != "" {
		m, err := strconv.Atoi(monthParam)
		if err != nil || m < 1 || m > 12 {
			h.writeBadDateParam(c, "month must be between 1 and 12")
			return
		}
		month = time.Month(m)
	}

	days, err := h.scheduleService.CalendarMonth(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Calendar retrieved successfully",
		Data: map[string]interface{}{
			"year":  year,
			"month": int(month),
			"days":  days,
		},
	})
}

// GetWorkload handles GET /api/v1/schedule/workload?date=YYYY-MM-DD
func (h *ScheduleController) GetWorkload(c *gin.Context) {
	date, ok := h.parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	workloads, err := h.scheduleService.ClassifyCrewWorkload(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Crew workload retrieved successfully",
		Data: map[string]interface{}{
			"date":  date,
			"crews": workloads,
		},
	})
}

// GetCrews handles GET /api/v1/schedule/crews
func (h *ScheduleController) GetCrews(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Crews retrieved successfully",
		Data:    h.config.Crews,
	})
}

// parseDate reads a YYYY-MM-DD query value, defaulting to today.
func (h *ScheduleController) parseDate(c *gin.Context, raw string) (models.Date, bool) {
	if raw == "" {
		return models.DateOf(time.Now()), true
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		h.writeBadDateParam(c, "date must be in YYYY-MM-DD format")
		return models.Date{}, false
	}
	return date, true
}

func (h *ScheduleController) writeBadDateParam(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid query parameter",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: details,
		},
	})
}

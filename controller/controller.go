package controller

import (
	"context"
	"errors"
	"maintdesk-backend/dal"
	"maintdesk-backend/models"
	"maintdesk-backend/repository"
	"maintdesk-backend/services"
	"net/http"

	"maintdesk-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Equipment *EquipmentController
	Schedule  *ScheduleController
	Complaint *ComplaintController
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	repos := repository.NewRepository(dbclient, cfg, log)
	container := services.NewService(repos, log, cfg)

	return &Controller{
		Equipment: NewEquipmentController(ctx, container.GetEquipmentService(), container.GetIngestService(), log),
		Schedule:  NewScheduleController(ctx, container.GetScheduleService(), cfg, log),
		Complaint: NewComplaintController(ctx, container.GetComplaintService(), log),
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	v1 := r.Group(basePath)

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"service": "MaintDesk Backend",
		})
	})

	// Equipment registry
	equipment := v1.Group("/equipment")
	equipment.POST("", c.Equipment.Register)
	equipment.GET("", c.Equipment.List)
	equipment.GET("/types", c.Equipment.GetTypes)
	equipment.POST("/scan", c.Equipment.Scan)
	equipment.GET("/:id", c.Equipment.Get)
	equipment.POST("/:id/maintenance", c.Equipment.AddMaintenance)
	equipment.POST("/:id/maintenance/complete", c.Equipment.CompleteMaintenance)

	// Maintenance schedule
	schedule := v1.Group("/schedule")
	schedule.POST("/events", c.Schedule.CreateEvent)
	schedule.GET("/events", c.Schedule.GetEvents)
	schedule.GET("/calendar", c.Schedule.GetCalendar)
	schedule.GET("/workload", c.Schedule.GetWorkload)
	schedule.GET("/crews", c.Schedule.GetCrews)

	// Work requests
	complaints := v1.Group("/complaints")
	complaints.POST("", c.Complaint.Create)
	complaints.GET("", c.Complaint.List)
	complaints.GET("/:id", c.Complaint.Get)
	complaints.PATCH("/:id", c.Complaint.Update)

	// Create HTTP server
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}
	// Start server
	logger := logger.NewLogger(config.LogLevel, config.LogFormat)
	logger.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// writeServiceError maps domain errors onto HTTP responses with the standard
// envelope. Anything unrecognized is a 500.
func writeServiceError(c *gin.Context, log logger.Logger, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var duplicateErr *models.DuplicateSerialError
	var crewErr *models.UnknownCrewError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: validationErr.Error(),
			},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Resource not found",
			Error: &models.APIError{
				Type:    "NotFoundError",
				Details: notFoundErr.Error(),
			},
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, models.APIResponse{
			Status:  "error",
			Code:    http.StatusConflict,
			Message: "Duplicate serial number",
			Error: &models.APIError{
				Type:    "DuplicateSerialError",
				Details: duplicateErr.Error(),
			},
		})
	case errors.As(err, &crewErr):
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Unknown crew",
			Error: &models.APIError{
				Type:    "UnknownCrewError",
				Details: crewErr.Error(),
			},
		})
	default:
		log.Error("Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
	}
}

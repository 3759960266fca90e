package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ScheduleControllerTestSuite contains HTTP-level tests for schedule handlers
type ScheduleControllerTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockSchedule *MockScheduleService
	controller   *ScheduleController
	router       *gin.Engine
}

func (suite *ScheduleControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctx = context.Background()
	suite.mockSchedule = &MockScheduleService{}

	config := &models.Config{
		Crews: []string{"Бригада №1", "Бригада №2"},
	}
	log := logger.NewLogger("error", "json")
	suite.controller = NewScheduleController(suite.ctx, suite.mockSchedule, config, log)

	suite.router = gin.New()
	suite.router.POST("/schedule/events", suite.controller.CreateEvent)
	suite.router.GET("/schedule/events", suite.controller.GetEvents)
	suite.router.GET("/schedule/calendar", suite.controller.GetCalendar)
	suite.router.GET("/schedule/workload", suite.controller.GetWorkload)
	suite.router.GET("/schedule/crews", suite.controller.GetCrews)
}

func (suite *ScheduleControllerTestSuite) TearDownTest() {
	suite.mockSchedule.AssertExpectations(suite.T())
}

func (suite *ScheduleControllerTestSuite) performRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(suite.T(), err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateEvent tests scheduling over HTTP
func (suite *ScheduleControllerTestSuite) TestCreateEvent() {
	expected := &models.MaintenanceEvent{ID: 1, Crew: "Бригада №1"}
	suite.mockSchedule.On("ScheduleMaintenance", mock.Anything, mock.MatchedBy(func(r *models.ScheduleEventRequest) bool {
		return r.Equipment == "Насос ЦН-400" && r.Crew == "Бригада №1"
	})).Return(expected, nil)

	w := suite.performRequest(http.MethodPost, "/schedule/events", map[string]interface{}{
		"date":      "2026-04-01",
		"equipment": "Насос ЦН-400",
		"type":      "inspection",
		"crew":      "Бригада №1",
		"priority":  "high",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestCreateEventBadPriority tests the oneof validation on priority
func (suite *ScheduleControllerTestSuite) TestCreateEventBadPriority() {
	w := suite.performRequest(http.MethodPost, "/schedule/events", map[string]interface{}{
		"date":      "2026-04-01",
		"equipment": "Насос",
		"type":      "inspection",
		"crew":      "Бригада №1",
		"priority":  "urgent",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateEventUnknownCrew tests the strict crew rejection path
func (suite *ScheduleControllerTestSuite) TestCreateEventUnknownCrew() {
	suite.mockSchedule.On("ScheduleMaintenance", mock.Anything, mock.Anything).
		Return(nil, &models.UnknownCrewError{Crew: "Бригада №9"})

	w := suite.performRequest(http.MethodPost, "/schedule/events", map[string]interface{}{
		"date":      "2026-04-01",
		"equipment": "Насос",
		"type":      "inspection",
		"crew":      "Бригада №9",
		"priority":  "low",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp models.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "UnknownCrewError", resp.Error.Type)
}

// TestGetEventsByDate tests the day listing
func (suite *ScheduleControllerTestSuite) TestGetEventsByDate() {
	day := models.NewDate(2026, time.April, 1)
	events := []*models.MaintenanceEvent{{ID: 1, Date: day}}
	suite.mockSchedule.On("EventsOn", mock.Anything, day).Return(events, nil)

	w := suite.performRequest(http.MethodGet, "/schedule/events?date=2026-04-01", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetEventsBadDate tests rejection of a malformed date
func (suite *ScheduleControllerTestSuite) TestGetEventsBadDate() {
	w := suite.performRequest(http.MethodGet, "/schedule/events?date=April+1st", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetCalendar tests the month view endpoint
func (suite *ScheduleControllerTestSuite) TestGetCalendar() {
	days := []models.CalendarDay{
		{Date: models.NewDate(2026, time.February, 1), HasEvents: false},
		{Date: models.NewDate(2026, time.February, 2), HasEvents: true},
	}
	suite.mockSchedule.On("CalendarMonth", mock.Anything, 2026, time.February).Return(days, nil)

	w := suite.performRequest(http.MethodGet, "/schedule/calendar?year=2026&month=2", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetCalendarBadMonth tests month range validation
func (suite *ScheduleControllerTestSuite) TestGetCalendarBadMonth() {
	w := suite.performRequest(http.MethodGet, "/schedule/calendar?year=2026&month=13", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetWorkload tests the crew workload endpoint
func (suite *ScheduleControllerTestSuite) TestGetWorkload() {
	day := models.NewDate(2026, time.April, 1)
	workloads := []models.CrewWorkload{
		{Crew: "Бригада №1", EventCount: 0, Tier: models.TierFree},
		{Crew: "Бригада №2", EventCount: 3, Tier: models.TierOverloaded},
	}
	suite.mockSchedule.On("ClassifyCrewWorkload", mock.Anything, day).Return(workloads, nil)

	w := suite.performRequest(http.MethodGet, "/schedule/workload?date=2026-04-01", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetCrews tests the configured crew roster endpoint
func (suite *ScheduleControllerTestSuite) TestGetCrews() {
	w := suite.performRequest(http.MethodGet, "/schedule/crews", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp models.APIResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	crews := resp.Data.([]interface{})
	assert.Len(suite.T(), crews, 2)
}

func TestScheduleControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleControllerTestSuite))
}

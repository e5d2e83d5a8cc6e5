package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateWeeklyTasks() {
	s := registerTestProfile(suite.T())

	tests := []struct {
		name   string
		body   v1.WeeklyTaskEditable
		status int
	}{
		{"Valid task", v1.WeeklyTaskEditable{WeekStart: types.NewDate(2026, time.August, 24), CategoryCode: "EX", Comment: "run three times"}, http.StatusCreated},
		{"Unknown category code", v1.WeeklyTaskEditable{CategoryCode: "NOPE"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			task := createTestWeeklyTask(t, s, tt.body, tt.status)

			if tt.status == http.StatusCreated {
				assert.Equal(t, tt.body.CategoryCode, task.Data.CategoryCode)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreateWeeklyTaskNormalizesWeek() {
	s := registerTestProfile(suite.T())

	// 2026-08-27 is a Thursday, its week starts on Monday, 2026-08-24
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{WeekStart: types.NewDate(2026, time.August, 27), CategoryCode: "EX"})
	assert.Equal(suite.T(), types.NewDate(2026, time.August, 24), task.Data.WeekStart)
}

func (suite *TestSuiteStandard) TestCreateWeeklyTaskDefaultsCurrentWeek() {
	s := registerTestProfile(suite.T())

	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{CategoryCode: "EX"})
	assert.Equal(suite.T(), types.Today().StartOfWeek(), task.Data.WeekStart)
}

func (suite *TestSuiteStandard) TestGetWeeklyTasks() {
	s := registerTestProfile(suite.T())

	_ = createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{WeekStart: types.NewDate(2026, time.August, 24), CategoryCode: "EX", Comment: "run three times"})
	_ = createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{WeekStart: types.NewDate(2026, time.August, 31), CategoryCode: "BK", Done: true})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"By week", "weekStart=2026-08-24", 1},
		{"By any day of the week", "weekStart=2026-08-26", 1},
		{"By category", "categoryCode=BK", 1},
		{"Done only", "done=true", 1},
		{"Search", "search=run", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/weekly-tasks?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.WeeklyTaskListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateWeeklyTask() {
	s := registerTestProfile(suite.T())
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodPatch, task.Data.Links.Self, map[string]any{
		"done": true,
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, task.Data.Links.Self, "", s.header())
	var response v1.WeeklyTaskResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Done)
}

func (suite *TestSuiteStandard) TestToggleWeeklyTaskDay() {
	s := registerTestProfile(suite.T())
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{
		CategoryCode: "EX",
		Days:         models.Weekdays{Monday: true},
	})

	// Toggling turns a day on …
	r := test.Request(suite.T(), http.MethodPost, task.Data.Links.Self+"/days/wednesday", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WeeklyTaskResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Days.Wednesday)
	assert.True(suite.T(), response.Data.Days.Monday)

	// … and off again. Day names are case-insensitive.
	r = test.Request(suite.T(), http.MethodPost, task.Data.Links.Self+"/days/Wednesday", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.Days.Wednesday)
}

func (suite *TestSuiteStandard) TestToggleWeeklyTaskDayInvalid() {
	s := registerTestProfile(suite.T())
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodPost, task.Data.Links.Self+"/days/someday", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestToggleWeeklyTaskDayNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodPost, task.Data.Links.Self+"/days/monday", "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteWeeklyTask() {
	s := registerTestProfile(suite.T())
	task := createTestWeeklyTask(suite.T(), s, v1.WeeklyTaskEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodDelete, task.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, task.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

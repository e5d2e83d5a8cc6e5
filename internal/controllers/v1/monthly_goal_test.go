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

func (suite *TestSuiteStandard) TestCreateMonthlyGoals() {
	s := registerTestProfile(suite.T())

	tests := []struct {
		name   string
		body   v1.MonthlyGoalEditable
		status int
	}{
		{"Valid goal", v1.MonthlyGoalEditable{Month: types.NewMonth(2026, time.September), CategoryCode: "BK", Title: "Finish two novels"}, http.StatusCreated},
		{"Unknown category code", v1.MonthlyGoalEditable{CategoryCode: "NOPE", Title: "Nope"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := createTestMonthlyGoal(t, s, tt.body, tt.status)

			if tt.status == http.StatusCreated {
				assert.Equal(t, tt.body.Title, goal.Data.Title)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreateMonthlyGoalDefaultsMonth() {
	s := registerTestProfile(suite.T())

	goal := createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{CategoryCode: "BK", Title: "Read"})
	assert.Equal(suite.T(), types.MonthOf(time.Now().In(time.UTC)), goal.Data.Month)
}

func (suite *TestSuiteStandard) TestGetMonthlyGoals() {
	s := registerTestProfile(suite.T())

	_ = createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{Month: types.NewMonth(2026, time.September), CategoryCode: "BK", Title: "Finish two novels"})
	_ = createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{Month: types.NewMonth(2026, time.October), CategoryCode: "EX", Title: "Run a 10k"})

	tests := []struct {
		name   string
		query  string
		count  int
		status int
	}{
		{"All", "", 2, http.StatusOK},
		{"By month", "month=2026-09", 1, http.StatusOK},
		{"By category", "categoryCode=EX", 1, http.StatusOK},
		{"Search", "search=novel", 1, http.StatusOK},
		{"Invalid month", "month=September", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/monthly-goals?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.MonthlyGoalListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Len(t, response.Data, tt.count)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateMonthlyGoal() {
	s := registerTestProfile(suite.T())
	goal := createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{CategoryCode: "BK", Title: "Read"})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"successCriteria": "20 pages per day",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", s.header())
	var response v1.MonthlyGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "20 pages per day", response.Data.SuccessCriteria)
	assert.Equal(suite.T(), "Read", response.Data.Title)
}

func (suite *TestSuiteStandard) TestBreakdownMonthlyGoal() {
	s := registerTestProfile(suite.T())
	goal := createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{
		Month:        types.NewMonth(2026, time.September),
		CategoryCode: "BK",
		Title:        "Finish two novels",
	})

	// September 2026 contains four Mondays: the 7th, 14th, 21st and 28th
	weeks := models.MonthlyGoal{Month: goal.Data.Month}.WeekStarts()
	suite.Require().Len(weeks, 4)

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Breakdown, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var breakdown v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &r, &breakdown)
	suite.Require().Len(breakdown.Data, 4)

	for i, task := range breakdown.Data {
		assert.Equal(suite.T(), weeks[i], task.WeekStart)
		assert.Equal(suite.T(), "BK", task.CategoryCode)
		assert.Equal(suite.T(), "Finish two novels", task.Comment)
	}

	// A second breakdown creates no duplicates
	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Breakdown, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	test.DecodeResponse(suite.T(), &r, &breakdown)
	assert.Len(suite.T(), breakdown.Data, 4)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/weekly-tasks", "", s.header())
	var tasks v1.WeeklyTaskListResponse
	test.DecodeResponse(suite.T(), &r, &tasks)
	assert.Len(suite.T(), tasks.Data, 4)
}

func (suite *TestSuiteStandard) TestBreakdownMonthlyGoalNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	goal := createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{CategoryCode: "BK", Title: "Read"})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Breakdown, "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMonthlyGoal() {
	s := registerTestProfile(suite.T())
	goal := createTestMonthlyGoal(suite.T(), s, v1.MonthlyGoalEditable{CategoryCode: "BK", Title: "Read"})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

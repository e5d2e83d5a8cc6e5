package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetStats() {
	s := registerTestProfile(suite.T())

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 27), CategoryCode: "EX", DurationMinutes: 45})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 28), CategoryCode: "EX", DurationMinutes: 30})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 29), CategoryCode: "BK", DurationMinutes: 25})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	assert.Equal(suite.T(), int64(3), response.Data.Records)
	assert.Equal(suite.T(), int64(100), response.Data.TotalMinutes)
	suite.Require().Len(response.Data.Categories, 2)

	// Largest first
	exercise := response.Data.Categories[0]
	assert.Equal(suite.T(), "EX", exercise.CategoryCode)
	assert.Equal(suite.T(), "Exercise", exercise.Label)
	assert.Equal(suite.T(), int64(2), exercise.Records)
	assert.Equal(suite.T(), int64(75), exercise.TotalMinutes)
	assert.True(suite.T(), exercise.Share.Equal(decimal.RequireFromString("0.75")))

	reading := response.Data.Categories[1]
	assert.Equal(suite.T(), "BK", reading.CategoryCode)
	assert.True(suite.T(), reading.Share.Equal(decimal.RequireFromString("0.25")))
}

func (suite *TestSuiteStandard) TestGetStatsRange() {
	s := registerTestProfile(suite.T())

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.July, 31), CategoryCode: "EX", DurationMinutes: 60})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 10), CategoryCode: "EX", DurationMinutes: 45})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats?from=2026-08-01&to=2026-08-31", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), int64(1), response.Data.Records)
	assert.Equal(suite.T(), int64(45), response.Data.TotalMinutes)
}

func (suite *TestSuiteStandard) TestGetStatsInvalidRange() {
	s := registerTestProfile(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats?from=2026-08-31&to=2026-08-01", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetStatsEmpty() {
	s := registerTestProfile(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), int64(0), response.Data.Records)
	assert.Len(suite.T(), response.Data.Categories, 0)
}

func (suite *TestSuiteStandard) TestGetStatsVanishedCategory() {
	s := registerTestProfile(suite.T())

	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "PIANO", DurationMinutes: 20})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The code itself serves as label once the category is gone
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Categories, 1)
	assert.Equal(suite.T(), "PIANO", response.Data.Categories[0].Label)
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/internal/types"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateDailyRecords() {
	s := registerTestProfile(suite.T())

	tests := []struct {
		name   string
		body   v1.DailyRecordEditable
		status int
	}{
		{"Valid record", v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 29), CategoryCode: "EX", DurationMinutes: 45}, http.StatusCreated},
		{"Without duration", v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 29), CategoryCode: "ML"}, http.StatusCreated},
		{"Unknown category code", v1.DailyRecordEditable{CategoryCode: "NOPE"}, http.StatusBadRequest},
		{"Empty category code", v1.DailyRecordEditable{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Posted directly so that invalid bodies reach the server
			// as written
			r := test.Request(t, http.MethodPost, "http://example.com/v1/records", []v1.DailyRecordEditable{tt.body}, s.header())
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusCreated {
				var response v1.DailyRecordCreateResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.body.CategoryCode, response.Data[0].Data.CategoryCode)
				assert.Equal(t, s.ProfileID, response.Data[0].Data.ProfileID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreateDailyRecordDefaultsDate() {
	s := registerTestProfile(suite.T())

	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})
	assert.Equal(suite.T(), types.Today(), record.Data.Date)
}

func (suite *TestSuiteStandard) TestCreateDailyRecordInactiveCode() {
	s := registerTestProfile(suite.T())

	// Deactivating a built-in category gates new records on its code
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/categories/defaults/EX", v1.CategoryPreferenceEditable{IsActive: false}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateDailyRecordsPartialSuccess() {
	s := registerTestProfile(suite.T())

	body := []v1.DailyRecordEditable{
		{CategoryCode: "EX", DurationMinutes: 30},
		{CategoryCode: "NOPE"},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/records", body, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DailyRecordCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetDailyRecords() {
	s := registerTestProfile(suite.T())

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 27), CategoryCode: "EX", Comment: "5k along the river"})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 28), CategoryCode: "BK", IsPublic: true})
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{Date: types.NewDate(2026, time.August, 29), CategoryCode: "EX"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"By date", "date=2026-08-28", 1},
		{"From", "from=2026-08-28", 2},
		{"To", "to=2026-08-28", 2},
		{"Range", "from=2026-08-28&to=2026-08-28", 1},
		{"By category", "categoryCode=EX", 2},
		{"Public only", "isPublic=true", 1},
		{"Search", "search=river", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/records?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DailyRecordListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	// Newest date first
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/records", "", s.header())
	var response v1.DailyRecordListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.NewDate(2026, time.August, 29), response.Data[0].Date)
}

func (suite *TestSuiteStandard) TestGetDailyRecordsScopedToProfile() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/records", "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DailyRecordListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetDailyRecord() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DailyRecordResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), record.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetDailyRecordInvalidID() {
	s := registerTestProfile(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/records/not-a-uuid", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateDailyRecord() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX", DurationMinutes: 30})

	r := test.Request(suite.T(), http.MethodPatch, record.Data.Links.Self, map[string]any{
		"durationMinutes": 60,
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "", s.header())
	var response v1.DailyRecordResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 60, response.Data.DurationMinutes)
	assert.Equal(suite.T(), "EX", response.Data.CategoryCode)
}

func (suite *TestSuiteStandard) TestUpdateDailyRecordCategoryGate() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	// A code in the PATCH body is gated on the effective list
	r := test.Request(suite.T(), http.MethodPatch, record.Data.Links.Self, map[string]any{
		"categoryCode": "NOPE",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Deactivating the category does not block updates to other fields
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/categories/defaults/EX", v1.CategoryPreferenceEditable{IsActive: false}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, record.Data.Links.Self, map[string]any{
		"comment": "still editable",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteDailyRecord() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodDelete, record.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteDailyRecordNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodDelete, record.Data.Links.Self, "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

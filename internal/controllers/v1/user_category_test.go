package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateUserCategories() {
	s := registerTestProfile(suite.T())

	tests := []struct {
		name   string
		body   v1.UserCategoryEditable
		status int
	}{
		{"Valid category", v1.UserCategoryEditable{Code: "MY_STUDY", Label: "Japanese study", IsActive: true}, http.StatusCreated},
		{"Lowercase code is normalized", v1.UserCategoryEditable{Code: "piano", Label: "Piano", IsActive: true}, http.StatusCreated},
		{"Duplicate code", v1.UserCategoryEditable{Code: "MY_STUDY", Label: "Again", IsActive: true}, http.StatusBadRequest},
		{"Empty code", v1.UserCategoryEditable{Label: "No code", IsActive: true}, http.StatusBadRequest},
		{"Code too long", v1.UserCategoryEditable{Code: "WAYTOOLONGCODE", Label: "Long", IsActive: true}, http.StatusBadRequest},
		{"Code with invalid characters", v1.UserCategoryEditable{Code: "NO-PE", Label: "Dash", IsActive: true}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			category := createTestUserCategory(t, s, tt.body, tt.status)

			if tt.status == http.StatusCreated {
				assert.Equal(t, tt.body.Label, category.Data.Label)
				assert.Equal(t, s.ProfileID, category.Data.ProfileID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCreateUserCategoryInactiveByDefault() {
	s := registerTestProfile(suite.T())

	// isActive has to be set explicitly, an omitted field means inactive
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "DRAFT", Label: "Draft"})
	assert.False(suite.T(), category.Data.IsActive)

	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "DRAFT"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetUserCategory() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserCategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), category.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetUserCategoryNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())

	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetUserCategories() {
	s := registerTestProfile(suite.T())

	_ = createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "B_LATER", Label: "Later", IsActive: true, SortOrder: 2})
	_ = createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "A_FIRST", Label: "First", IsActive: true, SortOrder: 1})
	_ = createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "C_OFF", Label: "Disabled", IsActive: false, SortOrder: 3})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"By code", "code=A_FIRST", 1},
		{"By label", "label=Later", 1},
		{"Active only", "isActive=true", 2},
		{"Search", "search=fir", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/custom?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.UserCategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	// Sort order wins over creation order
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/custom", "", s.header())
	var response v1.UserCategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "A_FIRST", response.Data[0].Code)
}

func (suite *TestSuiteStandard) TestUpdateUserCategory() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"label": "Grand piano",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.header())
	var response v1.UserCategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Grand piano", response.Data.Label)
	assert.Equal(suite.T(), "PIANO", response.Data.Code, "fields not in the body stay untouched")
}

func (suite *TestSuiteStandard) TestUpdateUserCategoryInvalidCode() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"code": "not valid!",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The stored code is untouched by the rejected update
	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stored v1.UserCategoryResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	assert.Equal(suite.T(), "PIANO", stored.Data.Code)
}

func (suite *TestSuiteStandard) TestUpdateUserCategoryCodeNormalized() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"code": "guitar",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UserCategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "GUITAR", updated.Data.Code)
}

func (suite *TestSuiteStandard) TestDeleteUserCategory() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	// Entries created with the code survive the category's deletion
	_ = createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "PIANO"})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/records", "", s.header())
	var records v1.DailyRecordListResponse
	test.DecodeResponse(suite.T(), &r, &records)
	assert.Len(suite.T(), records.Data, 1)
	assert.Equal(suite.T(), "PIANO", records.Data[0].CategoryCode)
}

func (suite *TestSuiteStandard) TestDeleteUserCategoryNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsUserCategory() {
	s := registerTestProfile(suite.T())
	category := createTestUserCategory(suite.T(), s, v1.UserCategoryEditable{Code: "PIANO", Label: "Piano", IsActive: true})

	r := test.Request(suite.T(), http.MethodOptions, category.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateMemos() {
	s := registerTestProfile(suite.T())

	memo := createTestMemo(suite.T(), s, v1.MemoEditable{Title: "Shoe shopping", Content: "Look for trail shoes."})
	assert.Equal(suite.T(), "Shoe shopping", memo.Data.Title)
	assert.Nil(suite.T(), memo.Data.RecordID)
}

func (suite *TestSuiteStandard) TestCreateMemoWithRecord() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	memo := createTestMemo(suite.T(), s, v1.MemoEditable{RecordID: &record.Data.ID, Content: "Felt great"})
	suite.Require().NotNil(memo.Data.RecordID)
	assert.Equal(suite.T(), record.Data.ID, *memo.Data.RecordID)
}

func (suite *TestSuiteStandard) TestCreateMemoForeignRecord() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), other, v1.DailyRecordEditable{CategoryCode: "EX"})

	// Another profile's record cannot be referenced
	_ = createTestMemo(suite.T(), s, v1.MemoEditable{RecordID: &record.Data.ID, Content: "Nope"}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetMemos() {
	s := registerTestProfile(suite.T())
	record := createTestRecord(suite.T(), s, v1.DailyRecordEditable{CategoryCode: "EX"})

	_ = createTestMemo(suite.T(), s, v1.MemoEditable{RecordID: &record.Data.ID, Title: "Shoes", Content: "Trail shoes for the long run"})
	_ = createTestMemo(suite.T(), s, v1.MemoEditable{Title: "Groceries", Content: "Oats"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"By record", fmt.Sprintf("record=%s", record.Data.ID), 1},
		{"By title", "title=Groceries", 1},
		{"Search", "search=trail", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/memos?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MemoListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateMemo() {
	s := registerTestProfile(suite.T())
	memo := createTestMemo(suite.T(), s, v1.MemoEditable{Content: "Draft"})

	r := test.Request(suite.T(), http.MethodPatch, memo.Data.Links.Self, map[string]any{
		"content": "Final",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, memo.Data.Links.Self, "", s.header())
	var response v1.MemoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Final", response.Data.Content)
}

func (suite *TestSuiteStandard) TestUpdateMemoForeignRecord() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	memo := createTestMemo(suite.T(), s, v1.MemoEditable{Content: "Mine"})
	record := createTestRecord(suite.T(), other, v1.DailyRecordEditable{CategoryCode: "EX"})

	r := test.Request(suite.T(), http.MethodPatch, memo.Data.Links.Self, map[string]any{
		"recordId": record.Data.ID,
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMemo() {
	s := registerTestProfile(suite.T())
	memo := createTestMemo(suite.T(), s, v1.MemoEditable{Content: "Gone soon"})

	r := test.Request(suite.T(), http.MethodDelete, memo.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, memo.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

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

func (suite *TestSuiteStandard) TestCreateDailyNote() {
	s := registerTestProfile(suite.T())

	note := createTestNote(suite.T(), s, v1.DailyNoteEditable{
		Date:    types.NewDate(2026, time.August, 29),
		Content: "Slow day, good run in the evening.",
	})
	assert.Equal(suite.T(), "Slow day, good run in the evening.", note.Data.Content)
	assert.Equal(suite.T(), s.ProfileID, note.Data.ProfileID)
}

func (suite *TestSuiteStandard) TestCreateDailyNoteDefaultsDate() {
	s := registerTestProfile(suite.T())

	note := createTestNote(suite.T(), s, v1.DailyNoteEditable{Content: "Today"})
	assert.Equal(suite.T(), types.Today(), note.Data.Date)
}

func (suite *TestSuiteStandard) TestCreateDailyNoteDuplicateDate() {
	s := registerTestProfile(suite.T())

	date := types.NewDate(2026, time.August, 29)
	_ = createTestNote(suite.T(), s, v1.DailyNoteEditable{Date: date, Content: "First"})

	// One note per profile and day
	_ = createTestNote(suite.T(), s, v1.DailyNoteEditable{Date: date, Content: "Second"}, http.StatusBadRequest)

	// Another profile can use the same date
	other := registerTestProfile(suite.T())
	_ = createTestNote(suite.T(), other, v1.DailyNoteEditable{Date: date, Content: "Theirs"})
}

func (suite *TestSuiteStandard) TestGetDailyNotes() {
	s := registerTestProfile(suite.T())

	_ = createTestNote(suite.T(), s, v1.DailyNoteEditable{Date: types.NewDate(2026, time.August, 28), Content: "Rainy"})
	_ = createTestNote(suite.T(), s, v1.DailyNoteEditable{Date: types.NewDate(2026, time.August, 29), Content: "Sunny, went for a run"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"By date", "date=2026-08-29", 1},
		{"Range", "from=2026-08-29", 1},
		{"Search", "search=run", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/notes?%s", tt.query), "", s.header())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DailyNoteListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	// Newest first
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notes", "", s.header())
	var response v1.DailyNoteListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.NewDate(2026, time.August, 29), response.Data[0].Date)
}

func (suite *TestSuiteStandard) TestUpdateDailyNote() {
	s := registerTestProfile(suite.T())
	note := createTestNote(suite.T(), s, v1.DailyNoteEditable{Content: "Draft"})

	r := test.Request(suite.T(), http.MethodPatch, note.Data.Links.Self, map[string]any{
		"content": "Final",
	}, s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, note.Data.Links.Self, "", s.header())
	var response v1.DailyNoteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Final", response.Data.Content)
}

func (suite *TestSuiteStandard) TestDeleteDailyNote() {
	s := registerTestProfile(suite.T())
	note := createTestNote(suite.T(), s, v1.DailyNoteEditable{Content: "Gone soon"})

	r := test.Request(suite.T(), http.MethodDelete, note.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, note.Data.Links.Self, "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDailyNoteNotOwned() {
	s := registerTestProfile(suite.T())
	other := registerTestProfile(suite.T())
	note := createTestNote(suite.T(), s, v1.DailyNoteEditable{Content: "Private"})

	r := test.Request(suite.T(), http.MethodGet, note.Data.Links.Self, "", other.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// session is an authenticated test profile.
type session struct {
	Token     string
	ProfileID uuid.UUID
	Username  string
}

// header returns the Authorization header for requests of this session.
func (s session) header() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.Token}
}

// registerTestProfile registers a fresh profile and logs it in.
func registerTestProfile(t *testing.T) session {
	username := uuid.NewString()

	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterRequest{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	r = test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Username: username,
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var login v1.LoginResponse
	test.DecodeResponse(t, &r, &login)
	require.NotNil(t, login.Data)

	return session{
		Token:     login.Data.Token,
		ProfileID: login.Data.Profile.ID,
		Username:  username,
	}
}

func createTestUserCategory(t *testing.T, s session, c v1.UserCategoryEditable, expectedStatus ...int) v1.UserCategoryResponse {
	if c.Label == "" {
		c.Label = "Test category"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.UserCategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories/custom", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.UserCategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.UserCategoryResponse{}
}

func createTestRecord(t *testing.T, s session, c v1.DailyRecordEditable, expectedStatus ...int) v1.DailyRecordResponse {
	if c.CategoryCode == "" {
		c.CategoryCode = "EX"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.DailyRecordEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/records", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.DailyRecordCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.DailyRecordResponse{}
}

func createTestPlan(t *testing.T, s session, c v1.DailyPlanEditable, expectedStatus ...int) v1.DailyPlanResponse {
	if c.CategoryCode == "" {
		c.CategoryCode = "ST"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.DailyPlanEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/plans", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.DailyPlanCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.DailyPlanResponse{}
}

func createTestWeeklyTask(t *testing.T, s session, c v1.WeeklyTaskEditable, expectedStatus ...int) v1.WeeklyTaskResponse {
	if c.CategoryCode == "" {
		c.CategoryCode = "EX"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.WeeklyTaskEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/weekly-tasks", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.WeeklyTaskCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.WeeklyTaskResponse{}
}

func createTestMonthlyGoal(t *testing.T, s session, c v1.MonthlyGoalEditable, expectedStatus ...int) v1.MonthlyGoalResponse {
	if c.CategoryCode == "" {
		c.CategoryCode = "BK"
	}

	if c.Title == "" {
		c.Title = "Test goal"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MonthlyGoalEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/monthly-goals", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MonthlyGoalCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.MonthlyGoalResponse{}
}

func createTestNote(t *testing.T, s session, c v1.DailyNoteEditable, expectedStatus ...int) v1.DailyNoteResponse {
	if c.Content == "" {
		c.Content = "Test note"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/notes", c, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.DailyNoteResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func createTestMemo(t *testing.T, s session, c v1.MemoEditable, expectedStatus ...int) v1.MemoResponse {
	if c.Content == "" {
		c.Content = "Test memo"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MemoEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/memos", body, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MemoCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.MemoResponse{}
}

func createTestPost(t *testing.T, s session, c v1.PostEditable, expectedStatus ...int) v1.PostResponse {
	if c.Title == "" {
		c.Title = "Test post"
	}

	if c.Content == "" {
		c.Content = "Test content"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/posts", c, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PostResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func createTestMessage(t *testing.T, s session, c v1.MessageEditable, expectedStatus ...int) v1.MessageResponse {
	if c.Content == "" {
		c.Content = "Test message"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/messages", c, s.header())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MessageResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

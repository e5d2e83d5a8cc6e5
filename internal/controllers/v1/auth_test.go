package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	tests := []struct {
		name     string
		body     v1.RegisterRequest
		status   int
	}{
		{
			"Valid registration",
			v1.RegisterRequest{Username: "taylor", Email: "taylor@example.com", Password: "correct horse battery staple"},
			http.StatusCreated,
		},
		{
			"Duplicate username",
			v1.RegisterRequest{Username: "taylor", Email: "other@example.com", Password: "correct horse battery staple"},
			http.StatusBadRequest,
		},
		{
			"Duplicate email",
			v1.RegisterRequest{Username: "sam", Email: "taylor@example.com", Password: "correct horse battery staple"},
			http.StatusBadRequest,
		},
		{
			"Invalid email",
			v1.RegisterRequest{Username: "robin", Email: "not-an-email", Password: "correct horse battery staple"},
			http.StatusBadRequest,
		},
		{
			"Password too short",
			v1.RegisterRequest{Username: "robin", Email: "robin@example.com", Password: "short"},
			http.StatusBadRequest,
		},
		{
			"Missing username",
			v1.RegisterRequest{Email: "robin@example.com", Password: "correct horse battery staple"},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusCreated {
				var response v1.ProfileResponse
				test.DecodeResponse(t, &r, &response)
				require.NotNil(t, response.Data)
				assert.Equal(t, tt.body.Username, response.Data.Username)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	s := registerTestProfile(suite.T())

	tests := []struct {
		name   string
		body   v1.LoginRequest
		status int
	}{
		{
			"Login with username",
			v1.LoginRequest{Username: s.Username, Password: "correct horse battery staple"},
			http.StatusOK,
		},
		{
			"Login with email",
			v1.LoginRequest{Email: s.Username + "@example.com", Password: "correct horse battery staple"},
			http.StatusOK,
		},
		{
			"Wrong password",
			v1.LoginRequest{Username: s.Username, Password: "not the password"},
			http.StatusUnauthorized,
		},
		{
			"Unknown account",
			v1.LoginRequest{Username: "nobody", Password: "correct horse battery staple"},
			http.StatusUnauthorized,
		},
		{
			"Missing password",
			v1.LoginRequest{Username: s.Username},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.LoginResponse
				test.DecodeResponse(t, &r, &response)
				require.NotNil(t, response.Data)
				assert.NotEmpty(t, response.Data.Token)
				assert.Equal(t, s.ProfileID, response.Data.Profile.ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetMe() {
	s := registerTestProfile(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles/me", "", s.header())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), s.ProfileID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/categories"},
		{http.MethodGet, "http://example.com/v1/records"},
		{http.MethodGet, "http://example.com/v1/plans"},
		{http.MethodGet, "http://example.com/v1/stats"},
		{http.MethodGet, "http://example.com/v1/export"},
		{http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.url, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestInvalidToken() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/records", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

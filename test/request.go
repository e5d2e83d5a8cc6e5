// Package test implements helpers for tests across the backend.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/doum4811/startbeyond-backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Request performs an HTTP request against a freshly configured router
// and returns the recorder. The body can be a string (sent as-is), a
// *bytes.Buffer, or anything JSON-marshallable.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var buf *bytes.Buffer

	switch b := body.(type) {
	case string:
		buf = bytes.NewBufferString(b)
	case *bytes.Buffer:
		buf = b
	default:
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "request body could not be marshalled to JSON")
		buf = bytes.NewBuffer(encoded)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.NoError(t, err, "router could not be initialized")

	router.AttachRoutes(r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, buf)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response body into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	require.NoErrorf(t, err, "unable to parse response %q into %v, request ID: %s", r.Body, reflect.TypeOf(target), r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus verifies that the response status is one of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

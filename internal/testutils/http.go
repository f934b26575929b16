package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite drives a gin router in-process
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a suite around a bare router in test mode
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body, if any, as JSON
func (s *HTTPTestSuite) MakeRequest(method, target string, body interface{}) *httptest.ResponseRecorder {
	return s.MakeRequestWithHeaders(method, target, body, nil)
}

// MakeAuthenticatedRequest sends the request with a bearer token
func (s *HTTPTestSuite) MakeAuthenticatedRequest(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	return s.MakeRequestWithHeaders(method, target, body, map[string]string{"Authorization": "Bearer " + token})
}

// MakeRequestWithHeaders sends the request with extra headers
func (s *HTTPTestSuite) MakeRequestWithHeaders(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// AssertJSONResponse checks the status and content type, then decodes the
// body into target when it is not nil
func AssertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target interface{}) {
	t.Helper()
	AssertSuccessResponse(t, rec, status)
	if target != nil {
		ParseJSONResponse(t, rec, target)
	}
}

// AssertErrorResponse checks the status and that the "error" field
// contains message
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	ParseJSONResponse(t, rec, &body)
	if message != "" {
		assert.Contains(t, body.Error, message)
	}
}

// AssertSuccessResponse checks the status and the JSON content type
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, jsonContentType, rec.Header().Get("Content-Type"))
}

// ParseJSONResponse decodes the recorded body into target
func ParseJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

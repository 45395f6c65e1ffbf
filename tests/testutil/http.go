package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPRequest represents a test HTTP request
type HTTPRequest struct {
	Method string
	Path   string
	// Query is appended to Path when set
	Query       url.Values
	Body        interface{}
	Headers     map[string]string
	AccessToken string
}

// HTTPResponse wraps the HTTP response for testing
type HTTPResponse struct {
	*httptest.ResponseRecorder
	t *testing.T
}

// DoRequest performs an HTTP request against the test server
func DoRequest(t *testing.T, e *echo.Echo, req HTTPRequest) *HTTPResponse {
	t.Helper()

	var body io.Reader
	if req.Body != nil {
		jsonBody, err := json.Marshal(req.Body)
		require.NoError(t, err)
		body = bytes.NewReader(jsonBody)
	}

	target := req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq := httptest.NewRequest(req.Method, target, body)
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if req.AccessToken != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.AccessToken)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httpReq)

	return &HTTPResponse{ResponseRecorder: rec, t: t}
}

// AssertStatus asserts the response status code
func (r *HTTPResponse) AssertStatus(expected int) *HTTPResponse {
	assert.Equal(r.t, expected, r.Code, "unexpected status code, body: %s", r.Body.String())
	return r
}

// AssertJSONPath asserts a specific path in the JSON response
func (r *HTTPResponse) AssertJSONPath(path string, expected interface{}) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.Equal(r.t, expected, value, "JSON path %s mismatch", path)
	return r
}

// AssertJSONPathExists asserts a path exists in the JSON response
func (r *HTTPResponse) AssertJSONPathExists(path string) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.NotNil(r.t, value, "JSON path %s does not exist", path)
	return r
}

// AssertJSONError asserts the response contains an error with expected code.
// An empty message skips the message check.
func (r *HTTPResponse) AssertJSONError(code string, message string) *HTTPResponse {
	errorObj, ok := r.GetJSON()["error"].(map[string]interface{})
	require.True(r.t, ok, "response does not contain error object: %s", r.Body.String())

	assert.Equal(r.t, code, errorObj["code"], "error code mismatch")
	if message != "" {
		assert.Equal(r.t, message, errorObj["message"], "error message mismatch")
	}
	return r
}

// AssertFieldError asserts the error details carry an entry for the field
func (r *HTTPResponse) AssertFieldError(field string) *HTTPResponse {
	errorObj, ok := r.GetJSON()["error"].(map[string]interface{})
	require.True(r.t, ok, "response does not contain error object: %s", r.Body.String())

	details, _ := errorObj["details"].([]interface{})
	for _, d := range details {
		if detail, ok := d.(map[string]interface{}); ok && detail["field"] == field {
			return r
		}
	}
	assert.Failf(r.t, "missing field error", "no detail for field %q in %s", field, r.Body.String())
	return r
}

// GetJSON parses the response body as JSON
func (r *HTTPResponse) GetJSON() map[string]interface{} {
	var result map[string]interface{}
	err := json.Unmarshal(r.Body.Bytes(), &result)
	require.NoError(r.t, err, "body: %s", r.Body.String())
	return result
}

// GetJSONData returns the "data" object from the response
func (r *HTTPResponse) GetJSONData() map[string]interface{} {
	data, ok := r.GetJSON()["data"].(map[string]interface{})
	if !ok {
		return nil
	}
	return data
}

// GetJSONList returns the "data" array of a list response
func (r *HTTPResponse) GetJSONList() []map[string]interface{} {
	raw, ok := r.GetJSON()["data"].([]interface{})
	require.True(r.t, ok, "response data is not a list: %s", r.Body.String())

	items := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]interface{})
		require.True(r.t, ok, "list item is not an object")
		items = append(items, obj)
	}
	return items
}

// getJSONPath gets a value from nested JSON using dot notation (e.g., "data.broker.email")
func getJSONPath(data map[string]interface{}, path string) interface{} {
	current := interface{}(data)
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			continue
		}
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

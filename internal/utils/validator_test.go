package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string   `json:"title" binding:"required"`
	Tags  []string `json:"tags,omitempty"`
}

type validationResponse struct {
	Status int                 `json:"status"`
	Data   ValidationErrorData `json:"data"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return w, BindAndValidate(c, &req)
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) validationResponse {
	t.Helper()
	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindAndValidateSuccess(t *testing.T) {
	_, ok := bind(t, `{"title":"T1"}`)
	assert.True(t, ok)
}

func TestBindAndValidateRequiredUsesJSONName(t *testing.T) {
	w, ok := bind(t, `{}`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeValidation(t, w)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "title", resp.Data.Errors[0].Field)
	assert.Equal(t, "Field 'title' is required", resp.Data.Errors[0].Message)
}

func TestBindAndValidateWrongType(t *testing.T) {
	w, ok := bind(t, `{"title":"T1","tags":"not-a-list"}`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeValidation(t, w)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "tags", resp.Data.Errors[0].Field)
}

func TestBindAndValidateMalformed(t *testing.T) {
	w, ok := bind(t, `{"title":`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeValidation(t, w)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "body", resp.Data.Errors[0].Field)
}

func TestGetJSONTagName(t *testing.T) {
	assert.Equal(t, "tags", getJSONTagName(&sampleRequest{}, "Tags"))
	assert.Equal(t, "Missing", getJSONTagName(sampleRequest{}, "Missing"))
}

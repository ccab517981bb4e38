package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"llm-prompt-repository/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupObservedLogger() *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Log = zap.New(core)
	return logs
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(), Metrics())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("storage down"))
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	logs := setupObservedLogger()
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok?q=x", nil)
	r.ServeHTTP(w, req)

	requestID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)

	entries := logs.FilterMessage("Request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, requestID, fields["request_id"])
		assert.Equal(t, "x", fields["query"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	}
}

func TestLoggerKeepsIncomingRequestID(t *testing.T) {
	setupObservedLogger()
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLoggerLevels(t *testing.T) {
	logs := setupObservedLogger()
	r := newTestRouter()

	for _, path := range []string{"/missing", "/fail"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, 1, logs.FilterMessage("Client Error").Len())
	assert.Equal(t, 1, logs.FilterMessage("storage down").Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("storage down").All()[0].Level)
}

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vladimirahmad90-oss/AccountManagement/pkg/logger"
)

func loggerTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := logger.NewLogger(&logger.Config{
		Level:      logger.InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     buf,
	})

	r := gin.New()
	r.Use(RequestID(), Logger(l))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("downstream failed"))
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := loggerTestEngine(&buf)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?limit=5", nil)
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, "request processed")
	assert.Contains(t, out, "/ping?limit=5")
	assert.Contains(t, out, "200")
	assert.Contains(t, out, "request_id")
}

func TestLoggerReportsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	r := loggerTestEngine(&buf)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "downstream failed")
}

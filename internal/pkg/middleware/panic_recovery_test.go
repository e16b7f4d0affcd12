package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arshalif/cashi/internal/pkg/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.ZapLogger {
	config := zap.NewDevelopmentConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config.EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newTestLogger(&logBuffer)

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"panic_type",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"stack_trace",
				"*errors.errorString",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()

			e := echo.New()
			panicHandler := func(c echo.Context) error {
				panic(tt.panicValue)
			}

			middleware := PanicRecoveryMiddleware(zapLogger)
			handler := middleware(panicHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			assert.NoError(t, err)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "Internal server error", response["message"])
			assert.Equal(t, "An unexpected error occurred while processing your request", response["error"])

			logOutput := logBuffer.String()
			for _, expectedLog := range tt.expectInLogs {
				assert.Contains(t, logOutput, expectedLog, "Expected log content not found")
			}

			// Stack trace stays in the logs, never in the response
			assert.NotContains(t, rec.Body.String(), "goroutine")
			assert.Contains(t, logOutput, "GET")
			assert.Contains(t, logOutput, "/test")
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newTestLogger(&logBuffer)

	e := echo.New()
	okHandler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	middleware := PanicRecoveryMiddleware(zapLogger)
	handler := middleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

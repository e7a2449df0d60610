package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tours/config"
	deliverycontext "tours/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		propagated bool
	}{
		{name: "generated", header: ""},
		{name: "propagated", header: "client-id-1", propagated: true},
		{name: "line break replaced", header: "abc\ninjected=1"},
		{name: "markup replaced", header: "<script>"},
		{name: "oversized replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)

			require.NoError(t, err)
			require.NotEmpty(t, seen)
			if tt.propagated {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
				_, parseErr := uuid.Parse(seen)
				assert.NoError(t, parseErr)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)
			assert.Contains(t, logs.String(), `"client_ip":"203.0.113.7"`)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var logs bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)), cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours?price[lt]=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), `"query":"price[lt]=500"`)
}

func TestLoggerMiddleware_DebugOff(t *testing.T) {
	var logs bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)), &config.Config{})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

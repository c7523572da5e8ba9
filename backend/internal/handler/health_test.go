package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func TestHealth(t *testing.T) {
	h := &Handler{health: &MockHealthChecker{}}
	rr := httptest.NewRecorder()

	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReady(t *testing.T) {
	testCases := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{"database available", nil, http.StatusOK, "ok"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "database unavailable"},
		{"ping timed out", context.DeadlineExceeded, http.StatusServiceUnavailable, "database unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Handler{health: &MockHealthChecker{
				PingFunc: func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline, "ping should run with a deadline")
					return tc.pingErr
				},
			}}
			rr := httptest.NewRecorder()

			h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tc.wantCode, rr.Code)
			assert.Equal(t, tc.wantBody, rr.Body.String())
		})
	}
}

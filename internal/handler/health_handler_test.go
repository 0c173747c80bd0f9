package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(context.Context) error {
	return f.err
}

func TestHealthHandlerConnected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(&fakePinger{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/health/", nil)

	handler.Check(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "connected", payload["database"])
	assert.Equal(t, "TARS Backend API", payload["service"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(&fakePinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/health/", nil)

	handler.Check(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "unhealthy", payload["status"])
	assert.Equal(t, "error: connection refused", payload["database"])
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tars-society/tars-club-api/internal/dto"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

type fakeHomeSrv struct {
	resp dto.HomeResponse
	hit  bool
	err  error
}

func (f *fakeHomeSrv) Get(context.Context) (dto.HomeResponse, bool, error) {
	return f.resp, f.hit, f.err
}

func TestHomeHandlerNullSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomeHandler(&fakeHomeSrv{resp: dto.HomeResponse{
		Sponsors:    []dto.SponsorResponse{},
		SocialLinks: []dto.SocialLinkResponse{},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/home/", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "null", string(payload["site_settings"]))
	assert.Equal(t, "[]", string(payload["sponsors"]))
	assert.Equal(t, "[]", string(payload["social_links"]))
}

func TestHomeHandlerCacheHitHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomeHandler(&fakeHomeSrv{hit: true})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/home/", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestHomeHandlerServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomeHandler(&fakeHomeSrv{err: appErrors.ErrInternal})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/home/", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

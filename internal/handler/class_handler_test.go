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
	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/internal/repository"
	"github.com/tars-society/tars-club-api/internal/service"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

type fakeClassSrv struct {
	list       []dto.ClassResponse
	listErr    error
	lastFilter repository.ClassFilter
	byID       *dto.ClassResponse
	byIDErr    error
}

func (f *fakeClassSrv) ListActive(_ context.Context, filter repository.ClassFilter) ([]dto.ClassResponse, error) {
	f.lastFilter = filter
	return f.list, f.listErr
}

func (f *fakeClassSrv) Get(context.Context, string) (*dto.ClassResponse, error) {
	return f.byID, f.byIDErr
}

func (f *fakeClassSrv) Create(context.Context, service.ClassRequest) (*dto.ClassResponse, error) {
	return f.byID, f.byIDErr
}

func (f *fakeClassSrv) Update(context.Context, string, service.ClassRequest) (*dto.ClassResponse, error) {
	return f.byID, f.byIDErr
}

func (f *fakeClassSrv) Delete(context.Context, string) error { return f.byIDErr }

func TestClassHandlerListPassesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeClassSrv{list: []dto.ClassResponse{{
		ID:             "cl-1",
		Title:          "Intro to Astrophotography",
		ComputedStatus: models.StatusOngoing,
		Mode:           models.ModeHybrid,
		IsJoinable:     true,
	}}}
	handler := NewClassHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/classes/?difficulty=advanced&search=astro", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "advanced", srv.lastFilter.Difficulty)
	assert.Equal(t, "astro", srv.lastFilter.Search)

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 1)
	assert.Equal(t, "ongoing", payload[0]["computed_status"])
	assert.Equal(t, "hybrid", payload[0]["mode"])
	assert.Equal(t, true, payload[0]["is_joinable"])
}

func TestClassHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewClassHandler(&fakeClassSrv{byIDErr: appErrors.ErrNotFound})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/classes/missing/", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClassHandlerCreateRejectsBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewClassHandler(&fakeClassSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/classes/", nil)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

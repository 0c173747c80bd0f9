package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/models"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

type singletonSettingsRepo struct {
	fakeSettingsRepo
	createErr error
}

func (f *singletonSettingsRepo) Create(_ context.Context, s *models.SiteSettings) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = "st-1"
	f.settings = s
	return nil
}

func TestSiteSettingsServiceCreate(t *testing.T) {
	repo := &singletonSettingsRepo{}
	svc := NewSiteSettingsService(repo, NewCacheService(nil, nil, time.Minute, zap.NewNop(), false), testResolver(), nil, zap.NewNop())

	resp, err := svc.Create(context.Background(), CreateSiteSettingsRequest{
		ClubName:     "TARS",
		ClubFullName: "Technology and Astronomy Research Society",
	})
	require.NoError(t, err)
	assert.Equal(t, "st-1", resp.ID)
	assert.Equal(t, "TARS", resp.ClubName)
}

func TestSiteSettingsServiceCreateSecondRowRejected(t *testing.T) {
	repo := &singletonSettingsRepo{createErr: appErrors.ErrSingletonExists}
	svc := NewSiteSettingsService(repo, NewCacheService(nil, nil, time.Minute, zap.NewNop(), false), testResolver(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateSiteSettingsRequest{
		ClubName:     "TARS",
		ClubFullName: "Technology and Astronomy Research Society",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "SINGLETON_EXISTS", appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestSiteSettingsServiceCreateValidatesPayload(t *testing.T) {
	svc := NewSiteSettingsService(&singletonSettingsRepo{}, NewCacheService(nil, nil, time.Minute, zap.NewNop(), false), testResolver(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateSiteSettingsRequest{ClubName: "TARS"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSiteSettingsServiceCreateInvalidatesHomeCache(t *testing.T) {
	cacheRepo := newFakeCacheRepo()
	cacheRepo.store[homeCacheKey] = []byte(`{}`)
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewSiteSettingsService(&singletonSettingsRepo{}, cache, testResolver(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateSiteSettingsRequest{
		ClubName:     "TARS",
		ClubFullName: "Technology and Astronomy Research Society",
	})
	require.NoError(t, err)
	assert.Empty(t, cacheRepo.store)
}

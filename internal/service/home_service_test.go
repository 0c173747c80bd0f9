package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/pkg/config"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

type fakeSettingsRepo struct {
	settings *models.SiteSettings
	err      error
}

func (f *fakeSettingsRepo) Get(context.Context) (*models.SiteSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) List(context.Context) ([]models.SiteSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return nil, nil
	}
	return []models.SiteSettings{*f.settings}, nil
}

func (f *fakeSettingsRepo) FindByID(context.Context, string) (*models.SiteSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *models.SiteSettings) error { return nil }
func (f *fakeSettingsRepo) Update(_ context.Context, s *models.SiteSettings) error { return nil }

type fakeSponsorRepo struct {
	sponsors []models.Sponsor
	err      error
}

func (f *fakeSponsorRepo) ListActive(context.Context) ([]models.Sponsor, error) {
	return f.sponsors, f.err
}
func (f *fakeSponsorRepo) FindByID(context.Context, string) (*models.Sponsor, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeSponsorRepo) Create(context.Context, *models.Sponsor) error { return nil }
func (f *fakeSponsorRepo) Update(context.Context, *models.Sponsor) error { return nil }
func (f *fakeSponsorRepo) Delete(context.Context, string) error          { return nil }

type fakeSocialLinkRepo struct {
	links []models.SocialLink
	err   error
}

func (f *fakeSocialLinkRepo) ListActive(context.Context) ([]models.SocialLink, error) {
	return f.links, f.err
}
func (f *fakeSocialLinkRepo) FindByID(context.Context, string) (*models.SocialLink, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeSocialLinkRepo) Create(context.Context, *models.SocialLink) error { return nil }
func (f *fakeSocialLinkRepo) Update(context.Context, *models.SocialLink) error { return nil }
func (f *fakeSocialLinkRepo) Delete(context.Context, string) error             { return nil }

type fakeCacheRepo struct {
	store map[string][]byte
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	f.store = map[string][]byte{}
	return nil
}

func testResolver() *media.Resolver {
	return media.NewResolver(config.MediaConfig{
		BaseURL:     "https://res.cloudinary.com/tars/image/upload/",
		LocalPrefix: "media/",
	})
}

func TestHomeServiceAggregatesSections(t *testing.T) {
	website := "https://acme.example"
	settings := &models.SiteSettings{ID: "st-1", ClubName: "TARS", ClubFullName: "Technology and Astronomy Research Society"}
	svc := NewHomeService(
		&fakeSettingsRepo{settings: settings},
		&fakeSponsorRepo{sponsors: []models.Sponsor{{
			ID:                "sp-1",
			Name:              "Acme",
			Logo:              "media/sponsors/acme.png",
			Website:           &website,
			CollaborationDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}}},
		&fakeSocialLinkRepo{links: []models.SocialLink{{ID: "sl-1", Platform: models.PlatformGitHub, URL: "https://github.com/tars"}}},
		NewCacheService(newFakeCacheRepo(), nil, time.Minute, zap.NewNop(), true),
		testResolver(),
		zap.NewNop(),
	)

	resp, hit, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.NotNil(t, resp.SiteSettings)
	assert.Equal(t, "TARS", resp.SiteSettings.ClubName)
	require.Len(t, resp.Sponsors, 1)
	assert.Equal(t, "March 2025", resp.Sponsors[0].CollaborationDateFormatted)
	require.NotNil(t, resp.Sponsors[0].Logo)
	assert.Equal(t, "https://res.cloudinary.com/tars/image/upload/sponsors/acme.png", *resp.Sponsors[0].Logo)
	require.Len(t, resp.SocialLinks, 1)
	assert.Equal(t, "GitHub", resp.SocialLinks[0].PlatformDisplay)
}

func TestHomeServiceDegradesWithoutSettings(t *testing.T) {
	svc := NewHomeService(
		&fakeSettingsRepo{err: sql.ErrNoRows},
		&fakeSponsorRepo{},
		&fakeSocialLinkRepo{},
		NewCacheService(nil, nil, time.Minute, zap.NewNop(), false),
		testResolver(),
		zap.NewNop(),
	)

	resp, hit, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, resp.SiteSettings)
	assert.Empty(t, resp.Sponsors)
	assert.Empty(t, resp.SocialLinks)
}

func TestHomeServiceServesFromCache(t *testing.T) {
	cacheRepo := newFakeCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	settingsRepo := &fakeSettingsRepo{settings: &models.SiteSettings{ID: "st-1", ClubName: "TARS"}}
	svc := NewHomeService(settingsRepo, &fakeSponsorRepo{}, &fakeSocialLinkRepo{}, cache, testResolver(), zap.NewNop())

	_, hit, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)

	// The second read must come from cache, not the repositories.
	settingsRepo.err = sql.ErrConnDone
	resp, hit, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	require.NotNil(t, resp.SiteSettings)
	assert.Equal(t, "TARS", resp.SiteSettings.ClubName)
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/dto"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

const (
	homeCacheKey     = "home:v1"
	homeCachePattern = "home:*"
)

// HomeService aggregates the landing page payload from the settings singleton,
// the sponsor showcase and the social link block.
type HomeService struct {
	settings siteSettingsRepository
	sponsors sponsorRepository
	links    socialLinkRepository
	cache    *CacheService
	resolver *media.Resolver
	logger   *zap.Logger
}

// NewHomeService constructs HomeService.
func NewHomeService(settings siteSettingsRepository, sponsors sponsorRepository, links socialLinkRepository, cache *CacheService, resolver *media.Resolver, logger *zap.Logger) *HomeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeService{
		settings: settings,
		sponsors: sponsors,
		links:    links,
		cache:    cache,
		resolver: resolver,
		logger:   logger,
	}
}

// Get returns the aggregate, serving from cache when possible. A missing
// settings row degrades to a null settings block rather than failing the
// whole aggregate. The second return reports whether the cache was hit.
func (s *HomeService) Get(ctx context.Context) (dto.HomeResponse, bool, error) {
	var cached dto.HomeResponse
	if hit, err := s.cache.Get(ctx, homeCacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	var resp dto.HomeResponse

	settings, err := s.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return dto.HomeResponse{}, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site settings")
		}
		s.logger.Debug("home aggregate served without site settings")
	} else {
		mapped := dto.NewSiteSettingsResponse(*settings, s.resolver)
		resp.SiteSettings = &mapped
	}

	sponsors, err := s.sponsors.ListActive(ctx)
	if err != nil {
		return dto.HomeResponse{}, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sponsors")
	}
	resp.Sponsors = dto.NewSponsorResponses(sponsors, s.resolver)

	links, err := s.links.ListActive(ctx)
	if err != nil {
		return dto.HomeResponse{}, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list social links")
	}
	resp.SocialLinks = dto.NewSocialLinkResponses(links)

	if err := s.cache.Set(ctx, homeCacheKey, resp, 0); err != nil {
		s.logger.Warn("failed to cache home aggregate", zap.Error(err))
	}
	return resp, false, nil
}

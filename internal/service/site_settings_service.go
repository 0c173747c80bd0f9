package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/models"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

type siteSettingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	List(ctx context.Context) ([]models.SiteSettings, error)
	FindByID(ctx context.Context, id string) (*models.SiteSettings, error)
	Create(ctx context.Context, settings *models.SiteSettings) error
	Update(ctx context.Context, settings *models.SiteSettings) error
}

// CreateSiteSettingsRequest captures the administrative seeding payload.
type CreateSiteSettingsRequest struct {
	ClubName       string  `json:"club_name" validate:"required"`
	ClubFullName   string  `json:"club_full_name" validate:"required"`
	ClubMotto      string  `json:"club_motto"`
	ClubLogo       *string `json:"club_logo"`
	UniversityLogo *string `json:"university_logo"`
	HeroBackground *string `json:"hero_background"`
}

// UpdateSiteSettingsRequest mutates the singleton in place.
type UpdateSiteSettingsRequest struct {
	ClubName       string  `json:"club_name" validate:"required"`
	ClubFullName   string  `json:"club_full_name" validate:"required"`
	ClubMotto      string  `json:"club_motto"`
	ClubLogo       *string `json:"club_logo"`
	UniversityLogo *string `json:"university_logo"`
	HeroBackground *string `json:"hero_background"`
}

// SiteSettingsService coordinates the settings singleton.
type SiteSettingsService struct {
	repo      siteSettingsRepository
	cache     *CacheService
	resolver  *media.Resolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSiteSettingsService constructs SiteSettingsService.
func NewSiteSettingsService(repo siteSettingsRepository, cache *CacheService, resolver *media.Resolver, validate *validator.Validate, logger *zap.Logger) *SiteSettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteSettingsService{repo: repo, cache: cache, resolver: resolver, validator: validate, logger: logger}
}

// List returns the zero-or-one element settings listing.
func (s *SiteSettingsService) List(ctx context.Context) ([]dto.SiteSettingsResponse, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list site settings")
	}
	out := make([]dto.SiteSettingsResponse, 0, len(settings))
	for _, item := range settings {
		out = append(out, dto.NewSiteSettingsResponse(item, s.resolver))
	}
	return out, nil
}

// Get returns the settings row by identifier.
func (s *SiteSettingsService) Get(ctx context.Context, id string) (*dto.SiteSettingsResponse, error) {
	settings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "site settings not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site settings")
	}
	resp := dto.NewSiteSettingsResponse(*settings, s.resolver)
	return &resp, nil
}

// Create seeds the singleton. A second attempt surfaces the validation error
// raised by the repository guard.
func (s *SiteSettingsService) Create(ctx context.Context, req CreateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid site settings payload")
	}

	settings := &models.SiteSettings{
		ClubName:       req.ClubName,
		ClubFullName:   req.ClubFullName,
		ClubMotto:      req.ClubMotto,
		ClubLogo:       req.ClubLogo,
		UniversityLogo: req.UniversityLogo,
		HeroBackground: req.HeroBackground,
	}
	if err := s.repo.Create(ctx, settings); err != nil {
		if errors.Is(err, appErrors.ErrSingletonExists) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create site settings")
	}

	s.invalidateHome(ctx)
	resp := dto.NewSiteSettingsResponse(*settings, s.resolver)
	return &resp, nil
}

// Update mutates the singleton in place.
func (s *SiteSettingsService) Update(ctx context.Context, id string, req UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid site settings payload")
	}

	settings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "site settings not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site settings")
	}

	settings.ClubName = req.ClubName
	settings.ClubFullName = req.ClubFullName
	settings.ClubMotto = req.ClubMotto
	settings.ClubLogo = req.ClubLogo
	settings.UniversityLogo = req.UniversityLogo
	settings.HeroBackground = req.HeroBackground

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update site settings")
	}

	s.invalidateHome(ctx)
	resp := dto.NewSiteSettingsResponse(*settings, s.resolver)
	return &resp, nil
}

func (s *SiteSettingsService) invalidateHome(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, homeCachePattern); err != nil {
		s.logger.Warn("failed to invalidate home cache", zap.Error(err))
	}
}

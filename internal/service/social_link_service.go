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
)

type socialLinkRepository interface {
	ListActive(ctx context.Context) ([]models.SocialLink, error)
	FindByID(ctx context.Context, id string) (*models.SocialLink, error)
	Create(ctx context.Context, link *models.SocialLink) error
	Update(ctx context.Context, link *models.SocialLink) error
	Delete(ctx context.Context, id string) error
}

// SocialLinkRequest is shared by create and update operations.
type SocialLinkRequest struct {
	Platform  models.Platform `json:"platform" validate:"required"`
	URL       string          `json:"url" validate:"required,url"`
	IconClass string          `json:"icon_class"`
	IsActive  *bool           `json:"is_active"`
	Order     int             `json:"order" validate:"gte=0"`
}

// SocialLinkService serves the footer social link block.
type SocialLinkService struct {
	repo      socialLinkRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSocialLinkService constructs SocialLinkService.
func NewSocialLinkService(repo socialLinkRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SocialLinkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SocialLinkService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// ListActive returns visible links in display order.
func (s *SocialLinkService) ListActive(ctx context.Context) ([]dto.SocialLinkResponse, error) {
	links, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list social links")
	}
	return dto.NewSocialLinkResponses(links), nil
}

// Get returns a single link regardless of visibility.
func (s *SocialLinkService) Get(ctx context.Context, id string) (*dto.SocialLinkResponse, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "social link not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load social link")
	}
	resp := dto.NewSocialLinkResponse(*link)
	return &resp, nil
}

// Create registers a social link.
func (s *SocialLinkService) Create(ctx context.Context, req SocialLinkRequest) (*dto.SocialLinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid social link payload")
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	link := &models.SocialLink{
		Platform:  req.Platform,
		URL:       req.URL,
		IconClass: req.IconClass,
		IsActive:  active,
		Order:     req.Order,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create social link")
	}
	s.invalidateHome(ctx)
	resp := dto.NewSocialLinkResponse(*link)
	return &resp, nil
}

// Update replaces a link's fields.
func (s *SocialLinkService) Update(ctx context.Context, id string, req SocialLinkRequest) (*dto.SocialLinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid social link payload")
	}
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "social link not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load social link")
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.IconClass = req.IconClass
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	link.Order = req.Order

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update social link")
	}
	s.invalidateHome(ctx)
	resp := dto.NewSocialLinkResponse(*link)
	return &resp, nil
}

// Delete removes a link permanently.
func (s *SocialLinkService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "social link not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load social link")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete social link")
	}
	s.invalidateHome(ctx)
	return nil
}

func (s *SocialLinkService) invalidateHome(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, homeCachePattern); err != nil {
		s.logger.Warn("failed to invalidate home cache", zap.Error(err))
	}
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/models"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

type sponsorRepository interface {
	ListActive(ctx context.Context) ([]models.Sponsor, error)
	FindByID(ctx context.Context, id string) (*models.Sponsor, error)
	Create(ctx context.Context, sponsor *models.Sponsor) error
	Update(ctx context.Context, sponsor *models.Sponsor) error
	Delete(ctx context.Context, id string) error
}

// SponsorRequest is shared by create and update operations.
type SponsorRequest struct {
	Name                string  `json:"name" validate:"required"`
	Logo                string  `json:"logo" validate:"required"`
	Website             *string `json:"website" validate:"omitempty,url"`
	CollaborationAgenda string  `json:"collaboration_agenda" validate:"required"`
	CollaborationDate   string  `json:"collaboration_date" validate:"required"`
	IsActive            *bool   `json:"is_active"`
	Order               int     `json:"order" validate:"gte=0"`
}

// SponsorService serves the sponsor showcase.
type SponsorService struct {
	repo      sponsorRepository
	cache     *CacheService
	resolver  *media.Resolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSponsorService constructs SponsorService.
func NewSponsorService(repo sponsorRepository, cache *CacheService, resolver *media.Resolver, validate *validator.Validate, logger *zap.Logger) *SponsorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SponsorService{repo: repo, cache: cache, resolver: resolver, validator: validate, logger: logger}
}

// ListActive returns visible sponsors in display order.
func (s *SponsorService) ListActive(ctx context.Context) ([]dto.SponsorResponse, error) {
	sponsors, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sponsors")
	}
	return dto.NewSponsorResponses(sponsors, s.resolver), nil
}

// Get returns a single sponsor regardless of visibility.
func (s *SponsorService) Get(ctx context.Context, id string) (*dto.SponsorResponse, error) {
	sponsor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "sponsor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sponsor")
	}
	resp := dto.NewSponsorResponse(*sponsor, s.resolver)
	return &resp, nil
}

// Create registers a sponsor collaboration.
func (s *SponsorService) Create(ctx context.Context, req SponsorRequest) (*dto.SponsorResponse, error) {
	sponsor, err := s.buildSponsor(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sponsor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create sponsor")
	}
	s.invalidateHome(ctx)
	resp := dto.NewSponsorResponse(*sponsor, s.resolver)
	return &resp, nil
}

// Update replaces a sponsor's fields.
func (s *SponsorService) Update(ctx context.Context, id string, req SponsorRequest) (*dto.SponsorResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "sponsor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sponsor")
	}

	updated, err := s.buildSponsor(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update sponsor")
	}
	s.invalidateHome(ctx)
	resp := dto.NewSponsorResponse(*updated, s.resolver)
	return &resp, nil
}

// Delete removes a sponsor permanently.
func (s *SponsorService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "sponsor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sponsor")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete sponsor")
	}
	s.invalidateHome(ctx)
	return nil
}

func (s *SponsorService) buildSponsor(req SponsorRequest) (*models.Sponsor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid sponsor payload")
	}
	collabDate, err := time.Parse("2006-01-02", req.CollaborationDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "collaboration_date must be YYYY-MM-DD")
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Sponsor{
		Name:                req.Name,
		Logo:                req.Logo,
		Website:             req.Website,
		CollaborationAgenda: req.CollaborationAgenda,
		CollaborationDate:   collabDate,
		IsActive:            active,
		Order:               req.Order,
	}, nil
}

func (s *SponsorService) invalidateHome(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, homeCachePattern); err != nil {
		s.logger.Warn("failed to invalidate home cache", zap.Error(err))
	}
}

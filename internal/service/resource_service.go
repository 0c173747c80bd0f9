package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/internal/repository"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

type resourceRepository interface {
	ListActive(ctx context.Context, filter repository.ResourceFilter) ([]models.Resource, error)
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
}

// ResourceRequest is shared by create and update operations.
type ResourceRequest struct {
	Title        string                  `json:"title" validate:"required"`
	Description  string                  `json:"description" validate:"required"`
	Category     models.ResourceCategory `json:"category" validate:"required,oneof=tutorial documentation video article book tool project other"`
	Thumbnail    *string                 `json:"thumbnail"`
	File         *string                 `json:"file"`
	ExternalLink *string                 `json:"external_link" validate:"omitempty,url"`
	Author       *string                 `json:"author"`
	Tags         string                  `json:"tags"`
	IsFeatured   *bool                   `json:"is_featured"`
	IsActive     *bool                   `json:"is_active"`
	Order        int                     `json:"order" validate:"gte=0"`
}

// ResourceService serves the learning resource catalogue.
type ResourceService struct {
	repo      resourceRepository
	resolver  *media.Resolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResourceService constructs ResourceService.
func NewResourceService(repo resourceRepository, resolver *media.Resolver, validate *validator.Validate, logger *zap.Logger) *ResourceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{repo: repo, resolver: resolver, validator: validate, logger: logger}
}

// ListActive returns visible resources in display order.
func (s *ResourceService) ListActive(ctx context.Context, filter repository.ResourceFilter) ([]dto.ResourceResponse, error) {
	resources, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resources")
	}
	return dto.NewResourceResponses(resources, s.resolver), nil
}

// Get returns a single resource regardless of visibility.
func (s *ResourceService) Get(ctx context.Context, id string) (*dto.ResourceResponse, error) {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resource")
	}
	resp := dto.NewResourceResponse(*resource, s.resolver)
	return &resp, nil
}

// Create registers a resource.
func (s *ResourceService) Create(ctx context.Context, req ResourceRequest) (*dto.ResourceResponse, error) {
	resource, err := s.buildResource(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create resource")
	}
	resp := dto.NewResourceResponse(*resource, s.resolver)
	return &resp, nil
}

// Update replaces a resource's fields. View and download counters survive the
// update untouched.
func (s *ResourceService) Update(ctx context.Context, id string, req ResourceRequest) (*dto.ResourceResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resource")
	}

	updated, err := s.buildResource(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.ViewCount = existing.ViewCount
	updated.DownloadCount = existing.DownloadCount

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update resource")
	}
	resp := dto.NewResourceResponse(*updated, s.resolver)
	return &resp, nil
}

// Delete removes a resource permanently.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "resource not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resource")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete resource")
	}
	return nil
}

func (s *ResourceService) buildResource(req ResourceRequest) (*models.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resource payload")
	}
	featured := false
	if req.IsFeatured != nil {
		featured = *req.IsFeatured
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Resource{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Thumbnail:    req.Thumbnail,
		File:         req.File,
		ExternalLink: req.ExternalLink,
		Author:       req.Author,
		Tags:         req.Tags,
		IsFeatured:   featured,
		IsActive:     active,
		Order:        req.Order,
	}, nil
}

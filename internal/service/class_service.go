package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/lifecycle"
	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/internal/repository"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/media"
)

type classRepository interface {
	ListActive(ctx context.Context, filter repository.ClassFilter) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

// ClassRequest is shared by create and update operations. Dates are RFC 3339
// wall-clock timestamps.
type ClassRequest struct {
	Title           string             `json:"title" validate:"required"`
	Description     string             `json:"description" validate:"required"`
	Instructor      string             `json:"instructor" validate:"required"`
	Difficulty      models.Difficulty  `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Status          models.ClassStatus `json:"status" validate:"omitempty,oneof=upcoming ongoing completed archived"`
	Thumbnail       *string            `json:"thumbnail"`
	StartDate       string             `json:"start_date" validate:"required"`
	EndDate         *string            `json:"end_date"`
	Duration        string             `json:"duration"`
	MaxParticipants int                `json:"max_participants" validate:"gte=0"`
	EnrolledCount   int                `json:"enrolled_count" validate:"gte=0"`
	MeetingLink     *string            `json:"meeting_link" validate:"omitempty,url"`
	Location        *string            `json:"location"`
	Syllabus        *string            `json:"syllabus"`
	IsActive        *bool              `json:"is_active"`
	Order           int                `json:"order" validate:"gte=0"`
}

// ClassService serves the class catalogue and its derived lifecycle state.
type ClassService struct {
	repo      classRepository
	engine    *lifecycle.Engine
	resolver  *media.Resolver
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, engine *lifecycle.Engine, resolver *media.Resolver, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{
		repo:      repo,
		engine:    engine,
		resolver:  resolver,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListActive returns visible classes with lifecycle state derived at call time.
func (s *ClassService) ListActive(ctx context.Context, filter repository.ClassFilter) ([]dto.ClassResponse, error) {
	classes, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	out, err := dto.NewClassResponses(classes, s.now(), s.engine, s.resolver)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to derive class state")
	}
	return out, nil
}

// Get returns a single class regardless of visibility.
func (s *ClassService) Get(ctx context.Context, id string) (*dto.ClassResponse, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	resp, err := dto.NewClassResponse(*class, s.now(), s.engine, s.resolver)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to derive class state")
	}
	return &resp, nil
}

// Create registers a class.
func (s *ClassService) Create(ctx context.Context, req ClassRequest) (*dto.ClassResponse, error) {
	class, err := s.buildClass(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	resp, err := dto.NewClassResponse(*class, s.now(), s.engine, s.resolver)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to derive class state")
	}
	return &resp, nil
}

// Update replaces a class's fields.
func (s *ClassService) Update(ctx context.Context, id string, req ClassRequest) (*dto.ClassResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	updated, err := s.buildClass(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	resp, err := dto.NewClassResponse(*updated, s.now(), s.engine, s.resolver)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to derive class state")
	}
	return &resp, nil
}

// Delete removes a class permanently.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	return nil
}

func (s *ClassService) buildClass(req ClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "start_date must be RFC 3339")
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "end_date must be RFC 3339")
		}
		if parsed.Before(start) {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "end_date must not precede start_date")
		}
		end = &parsed
	}
	status := req.Status
	if status == "" {
		status = models.StatusUpcoming
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Class{
		Title:           req.Title,
		Description:     req.Description,
		Instructor:      req.Instructor,
		Difficulty:      req.Difficulty,
		Status:          status,
		Thumbnail:       req.Thumbnail,
		StartDate:       start,
		EndDate:         end,
		Duration:        req.Duration,
		MaxParticipants: req.MaxParticipants,
		EnrolledCount:   req.EnrolledCount,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Syllabus:        req.Syllabus,
		IsActive:        active,
		Order:           req.Order,
	}, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tars-society/tars-club-api/internal/models"
)

// ResourceFilter defines optional filter criteria for listing resources.
type ResourceFilter struct {
	Category string
	Featured *bool
	Search   string
}

// ResourceRepository manages persistence for learning resources.
type ResourceRepository struct {
	db *sqlx.DB
}

// NewResourceRepository constructs a resource repository.
func NewResourceRepository(db *sqlx.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

const resourceColumns = `id, title, description, category, thumbnail, file, external_link, author, tags, is_featured,
	is_active, view_count, download_count, display_order, created_at, updated_at`

// ListActive returns active resources matching the filter, ordered for
// display; ties on the order field break by newest first.
func (r *ResourceRepository) ListActive(ctx context.Context, filter ResourceFilter) ([]models.Resource, error) {
	base := "FROM resources WHERE is_active = TRUE"
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)+1))
		args = append(args, *filter.Featured)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(tags) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY display_order ASC, created_at DESC", resourceColumns, base)
	var resources []models.Resource
	if err := r.db.SelectContext(ctx, &resources, query, args...); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// FindByID returns a resource record by ID.
func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	query := fmt.Sprintf(`SELECT %s FROM resources WHERE id = $1`, resourceColumns)
	var resource models.Resource
	if err := r.db.GetContext(ctx, &resource, query, id); err != nil {
		return nil, err
	}
	return &resource, nil
}

// Create persists a resource record.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = now
	}
	resource.UpdatedAt = now

	const query = `INSERT INTO resources (id, title, description, category, thumbnail, file, external_link, author, tags, is_featured,
		is_active, view_count, download_count, display_order, created_at, updated_at)
		VALUES (:id, :title, :description, :category, :thumbnail, :file, :external_link, :author, :tags, :is_featured,
		:is_active, :view_count, :download_count, :display_order, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, resource); err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

// Update modifies a resource record.
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	resource.UpdatedAt = time.Now().UTC()
	const query = `UPDATE resources SET title = :title, description = :description, category = :category, thumbnail = :thumbnail,
		file = :file, external_link = :external_link, author = :author, tags = :tags, is_featured = :is_featured,
		is_active = :is_active, view_count = :view_count, download_count = :download_count, display_order = :display_order,
		updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, resource); err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

// Delete removes a resource record.
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

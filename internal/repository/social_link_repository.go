package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tars-society/tars-club-api/internal/models"
)

// SocialLinkRepository manages persistence for social links.
type SocialLinkRepository struct {
	db *sqlx.DB
}

// NewSocialLinkRepository constructs a social link repository.
func NewSocialLinkRepository(db *sqlx.DB) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

const socialLinkColumns = `id, platform, url, icon_class, is_active, display_order, created_at`

// ListActive returns active links ordered for display, ties by insertion order.
func (r *SocialLinkRepository) ListActive(ctx context.Context) ([]models.SocialLink, error) {
	query := fmt.Sprintf(`SELECT %s FROM social_links WHERE is_active = TRUE ORDER BY display_order ASC, created_at ASC`, socialLinkColumns)
	var links []models.SocialLink
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return links, nil
}

// FindByID returns a social link record by ID.
func (r *SocialLinkRepository) FindByID(ctx context.Context, id string) (*models.SocialLink, error) {
	query := fmt.Sprintf(`SELECT %s FROM social_links WHERE id = $1`, socialLinkColumns)
	var link models.SocialLink
	if err := r.db.GetContext(ctx, &link, query, id); err != nil {
		return nil, err
	}
	return &link, nil
}

// Create persists a social link record.
func (r *SocialLinkRepository) Create(ctx context.Context, link *models.SocialLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO social_links (id, platform, url, icon_class, is_active, display_order, created_at)
		VALUES (:id, :platform, :url, :icon_class, :is_active, :display_order, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, link); err != nil {
		return fmt.Errorf("create social link: %w", err)
	}
	return nil
}

// Update modifies a social link record.
func (r *SocialLinkRepository) Update(ctx context.Context, link *models.SocialLink) error {
	const query = `UPDATE social_links SET platform = :platform, url = :url, icon_class = :icon_class,
		is_active = :is_active, display_order = :display_order WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, link); err != nil {
		return fmt.Errorf("update social link: %w", err)
	}
	return nil
}

// Delete removes a social link record.
func (r *SocialLinkRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM social_links WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

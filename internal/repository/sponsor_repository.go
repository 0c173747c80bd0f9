package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tars-society/tars-club-api/internal/models"
)

// SponsorRepository manages persistence for sponsors.
type SponsorRepository struct {
	db *sqlx.DB
}

// NewSponsorRepository constructs a sponsor repository.
func NewSponsorRepository(db *sqlx.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

const sponsorColumns = `id, name, logo, website, collaboration_agenda, collaboration_date, is_active, display_order, created_at, updated_at`

// ListActive returns active sponsors ordered for display; ties on the order
// field break by newest collaboration, then insertion order.
func (r *SponsorRepository) ListActive(ctx context.Context) ([]models.Sponsor, error) {
	query := fmt.Sprintf(`SELECT %s FROM sponsors WHERE is_active = TRUE ORDER BY display_order ASC, collaboration_date DESC, created_at ASC`, sponsorColumns)
	var sponsors []models.Sponsor
	if err := r.db.SelectContext(ctx, &sponsors, query); err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	return sponsors, nil
}

// FindByID returns a sponsor record by ID.
func (r *SponsorRepository) FindByID(ctx context.Context, id string) (*models.Sponsor, error) {
	query := fmt.Sprintf(`SELECT %s FROM sponsors WHERE id = $1`, sponsorColumns)
	var sponsor models.Sponsor
	if err := r.db.GetContext(ctx, &sponsor, query, id); err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// Create persists a sponsor record.
func (r *SponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	if sponsor.ID == "" {
		sponsor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if sponsor.CreatedAt.IsZero() {
		sponsor.CreatedAt = now
	}
	sponsor.UpdatedAt = now

	const query = `INSERT INTO sponsors (id, name, logo, website, collaboration_agenda, collaboration_date, is_active, display_order, created_at, updated_at)
		VALUES (:id, :name, :logo, :website, :collaboration_agenda, :collaboration_date, :is_active, :display_order, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, sponsor); err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}
	return nil
}

// Update modifies a sponsor record.
func (r *SponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	sponsor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE sponsors SET name = :name, logo = :logo, website = :website, collaboration_agenda = :collaboration_agenda,
		collaboration_date = :collaboration_date, is_active = :is_active, display_order = :display_order, updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, sponsor); err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}
	return nil
}

// Delete removes a sponsor record.
func (r *SponsorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sponsors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sponsor: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tars-society/tars-club-api/internal/models"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

// SiteSettingsRepository manages the single-row site_settings table. The
// singleton invariant is enforced here, at write time, not in process memory.
type SiteSettingsRepository struct {
	db *sqlx.DB
}

// NewSiteSettingsRepository constructs the repository.
func NewSiteSettingsRepository(db *sqlx.DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

const siteSettingsColumns = `id, club_name, club_full_name, club_motto, club_logo, university_logo, hero_background, updated_at`

// Get returns the settings row. Callers treat sql.ErrNoRows as "not seeded
// yet", which is a valid state, not a failure.
func (r *SiteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	query := fmt.Sprintf(`SELECT %s FROM site_settings LIMIT 1`, siteSettingsColumns)
	var settings models.SiteSettings
	if err := r.db.GetContext(ctx, &settings, query); err != nil {
		return nil, err
	}
	return &settings, nil
}

// List returns zero or one rows, preserving the router-style list contract.
func (r *SiteSettingsRepository) List(ctx context.Context) ([]models.SiteSettings, error) {
	query := fmt.Sprintf(`SELECT %s FROM site_settings LIMIT 1`, siteSettingsColumns)
	var settings []models.SiteSettings
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("list site settings: %w", err)
	}
	return settings, nil
}

// FindByID returns the settings row by identifier.
func (r *SiteSettingsRepository) FindByID(ctx context.Context, id string) (*models.SiteSettings, error) {
	query := fmt.Sprintf(`SELECT %s FROM site_settings WHERE id = $1`, siteSettingsColumns)
	var settings models.SiteSettings
	if err := r.db.GetContext(ctx, &settings, query, id); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create inserts the settings row. A second insert is rejected with a
// validation error and leaves the first row untouched.
func (r *SiteSettingsRepository) Create(ctx context.Context, settings *models.SiteSettings) error {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM site_settings`); err != nil {
		return fmt.Errorf("check site settings singleton: %w", err)
	}
	if count > 0 {
		return appErrors.ErrSingletonExists
	}

	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}
	settings.UpdatedAt = time.Now().UTC()

	const query = `INSERT INTO site_settings (id, club_name, club_full_name, club_motto, club_logo, university_logo, hero_background, updated_at)
		VALUES (:id, :club_name, :club_full_name, :club_motto, :club_logo, :university_logo, :hero_background, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("create site settings: %w", err)
	}
	return nil
}

// Update mutates the settings row in place.
func (r *SiteSettingsRepository) Update(ctx context.Context, settings *models.SiteSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	const query = `UPDATE site_settings SET club_name = :club_name, club_full_name = :club_full_name, club_motto = :club_motto,
		club_logo = :club_logo, university_logo = :university_logo, hero_background = :hero_background, updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("update site settings: %w", err)
	}
	return nil
}

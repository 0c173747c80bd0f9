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

// ClassFilter defines optional filter criteria for listing classes.
type ClassFilter struct {
	Difficulty string
	Search     string
}

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `id, title, description, instructor, difficulty, status, thumbnail, start_date, end_date, duration,
	max_participants, enrolled_count, meeting_link, location, syllabus, is_active, display_order, created_at, updated_at`

// ListActive returns active classes matching the filter, ordered for display;
// ties on the order field break by newest start date, then insertion order.
func (r *ClassRepository) ListActive(ctx context.Context, filter ClassFilter) ([]models.Class, error) {
	base := "FROM classes WHERE is_active = TRUE"
	var conditions []string
	var args []interface{}

	if filter.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", len(args)+1))
		args = append(args, filter.Difficulty)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(instructor) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY display_order ASC, start_date DESC, created_at ASC", classColumns, base)
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID returns a class record by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	query := fmt.Sprintf(`SELECT %s FROM classes WHERE id = $1`, classColumns)
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// Create persists a class record.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if class.CreatedAt.IsZero() {
		class.CreatedAt = now
	}
	class.UpdatedAt = now

	const query = `INSERT INTO classes (id, title, description, instructor, difficulty, status, thumbnail, start_date, end_date, duration,
		max_participants, enrolled_count, meeting_link, location, syllabus, is_active, display_order, created_at, updated_at)
		VALUES (:id, :title, :description, :instructor, :difficulty, :status, :thumbnail, :start_date, :end_date, :duration,
		:max_participants, :enrolled_count, :meeting_link, :location, :syllabus, :is_active, :display_order, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update modifies a class record.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	class.UpdatedAt = time.Now().UTC()
	const query = `UPDATE classes SET title = :title, description = :description, instructor = :instructor, difficulty = :difficulty,
		status = :status, thumbnail = :thumbnail, start_date = :start_date, end_date = :end_date, duration = :duration,
		max_participants = :max_participants, enrolled_count = :enrolled_count, meeting_link = :meeting_link, location = :location,
		syllabus = :syllabus, is_active = :is_active, display_order = :display_order, updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// Delete removes a class record.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

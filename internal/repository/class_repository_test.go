package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tars-society/tars-club-api/internal/models"
)

func newClassRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func classRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "instructor", "difficulty", "status", "thumbnail", "start_date", "end_date", "duration",
		"max_participants", "enrolled_count", "meeting_link", "location", "syllabus", "is_active", "display_order", "created_at", "updated_at",
	})
}

func TestClassRepositoryListActive(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	now := time.Now()
	rows := classRows().
		AddRow("class-1", "Intro to Robotics", "Build a line follower", "A. Rao", "beginner", "upcoming", nil, now.Add(24*time.Hour), nil, "4 weeks",
			30, 12, nil, nil, nil, true, 0, now, now)
	mock.ExpectQuery("SELECT (.+) FROM classes WHERE is_active = TRUE ORDER BY display_order ASC, start_date DESC").
		WillReturnRows(rows)

	classes, err := repo.ListActive(context.Background(), ClassFilter{})
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, models.DifficultyBeginner, classes[0].Difficulty)
	assert.Nil(t, classes[0].EndDate)
}

func TestClassRepositoryListActiveWithFilter(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectQuery("SELECT (.+) FROM classes WHERE is_active = TRUE AND difficulty =").
		WithArgs("advanced").
		WillReturnRows(classRows())

	classes, err := repo.ListActive(context.Background(), ClassFilter{Difficulty: "advanced"})
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestClassRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newClassRepoMock(t)
	defer cleanup()

	repo := NewClassRepository(db)
	mock.ExpectExec("INSERT INTO classes").WillReturnResult(sqlmock.NewResult(1, 1))

	class := &models.Class{
		Title:           "Autonomy 101",
		Instructor:      "B. Chen",
		Difficulty:      models.DifficultyIntermediate,
		Status:          models.StatusUpcoming,
		StartDate:       time.Now().Add(48 * time.Hour),
		MaxParticipants: 25,
		IsActive:        true,
	}
	require.NoError(t, repo.Create(context.Background(), class))
	assert.NotEmpty(t, class.ID)
	assert.False(t, class.CreatedAt.IsZero())
}

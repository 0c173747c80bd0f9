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

func newSponsorRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSponsorRepositoryListActiveOrdering(t *testing.T) {
	db, mock, cleanup := newSponsorRepoMock(t)
	defer cleanup()

	repo := NewSponsorRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "logo", "website", "collaboration_agenda", "collaboration_date", "is_active", "display_order", "created_at", "updated_at"}).
		AddRow("sponsor-1", "Acme Robotics", "sponsors/acme.png", nil, "Hardware grants", now.AddDate(-1, 0, 0), true, 0, now, now).
		AddRow("sponsor-2", "Initech", "sponsors/initech.png", nil, "Cloud credits", now.AddDate(-2, 0, 0), true, 1, now, now)
	mock.ExpectQuery("SELECT (.+) FROM sponsors WHERE is_active = TRUE ORDER BY display_order ASC, collaboration_date DESC").
		WillReturnRows(rows)

	sponsors, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, sponsors, 2)
	assert.Equal(t, "Acme Robotics", sponsors[0].Name)
}

func TestSponsorRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSponsorRepoMock(t)
	defer cleanup()

	repo := NewSponsorRepository(db)
	mock.ExpectExec("INSERT INTO sponsors").WillReturnResult(sqlmock.NewResult(1, 1))

	sponsor := &models.Sponsor{
		Name:                "Acme Robotics",
		Logo:                "sponsors/acme.png",
		CollaborationAgenda: "Hardware grants",
		CollaborationDate:   time.Now().AddDate(-1, 0, 0),
		IsActive:            true,
	}
	require.NoError(t, repo.Create(context.Background(), sponsor))
	assert.NotEmpty(t, sponsor.ID)
}

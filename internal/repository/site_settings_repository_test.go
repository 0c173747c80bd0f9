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
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

func newSiteSettingsRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSiteSettingsRepositoryGet(t *testing.T) {
	db, mock, cleanup := newSiteSettingsRepoMock(t)
	defer cleanup()

	repo := NewSiteSettingsRepository(db)
	rows := sqlmock.NewRows([]string{"id", "club_name", "club_full_name", "club_motto", "club_logo", "university_logo", "hero_background", "updated_at"}).
		AddRow("settings-1", "TARS", "Technology and Automation Research Society", "Pioneering the future", nil, nil, nil, time.Now())
	mock.ExpectQuery("SELECT id, club_name").WillReturnRows(rows)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TARS", settings.ClubName)
	assert.Nil(t, settings.ClubLogo)
}

func TestSiteSettingsRepositoryCreateFirstRow(t *testing.T) {
	db, mock, cleanup := newSiteSettingsRepoMock(t)
	defer cleanup()

	repo := NewSiteSettingsRepository(db)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO site_settings").WillReturnResult(sqlmock.NewResult(1, 1))

	settings := &models.SiteSettings{ClubName: "TARS", ClubFullName: "Technology and Automation Research Society"}
	require.NoError(t, repo.Create(context.Background(), settings))
	assert.NotEmpty(t, settings.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteSettingsRepositoryCreateSecondRowRejected(t *testing.T) {
	db, mock, cleanup := newSiteSettingsRepoMock(t)
	defer cleanup()

	repo := NewSiteSettingsRepository(db)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	settings := &models.SiteSettings{ClubName: "Another Club"}
	err := repo.Create(context.Background(), settings)
	assert.ErrorIs(t, err, appErrors.ErrSingletonExists)

	// No INSERT was attempted: the existing row remains unchanged.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteSettingsRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newSiteSettingsRepoMock(t)
	defer cleanup()

	repo := NewSiteSettingsRepository(db)
	mock.ExpectQuery("SELECT id, club_name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "club_name", "club_full_name", "club_motto", "club_logo", "university_logo", "hero_background", "updated_at"}))

	settings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings)
}

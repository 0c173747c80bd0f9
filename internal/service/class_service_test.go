package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/lifecycle"
	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/internal/repository"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

type fakeClassRepo struct {
	classes []models.Class
	byID    *models.Class
	created *models.Class
	err     error
}

func (f *fakeClassRepo) ListActive(context.Context, repository.ClassFilter) ([]models.Class, error) {
	return f.classes, f.err
}

func (f *fakeClassRepo) FindByID(context.Context, string) (*models.Class, error) {
	if f.byID == nil {
		return nil, sql.ErrNoRows
	}
	return f.byID, nil
}

func (f *fakeClassRepo) Create(_ context.Context, c *models.Class) error {
	c.ID = "cl-1"
	f.created = c
	return f.err
}

func (f *fakeClassRepo) Update(_ context.Context, c *models.Class) error { return f.err }
func (f *fakeClassRepo) Delete(context.Context, string) error            { return f.err }

func newClassServiceWithNow(repo *fakeClassRepo, now time.Time) *ClassService {
	svc := NewClassService(repo, lifecycle.NewEngine(time.UTC), testResolver(), nil, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestClassServiceListDerivesState(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	link := "https://meet.example/session"
	location := "Room 204"
	repo := &fakeClassRepo{classes: []models.Class{{
		ID:              "cl-1",
		Title:           "Intro to Astrophotography",
		Difficulty:      models.DifficultyBeginner,
		Status:          models.StatusUpcoming,
		StartDate:       now.Add(-time.Hour),
		MeetingLink:     &link,
		Location:        &location,
		MaxParticipants: 30,
		EnrolledCount:   30,
		IsActive:        true,
	}}}

	out, err := newClassServiceWithNow(repo, now).ListActive(context.Background(), repository.ClassFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, models.StatusOngoing, got.ComputedStatus)
	assert.Equal(t, "Ongoing", got.ComputedStatusDisplay)
	assert.Equal(t, models.ModeHybrid, got.Mode)
	assert.Equal(t, "Offline + Online", got.ModeDisplay)
	assert.True(t, got.IsFull)
	assert.True(t, got.IsJoinable)
	assert.Equal(t, "Beginner", got.DifficultyDisplay)
}

func TestClassServiceGetNotFound(t *testing.T) {
	svc := newClassServiceWithNow(&fakeClassRepo{}, time.Now().UTC())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestClassServiceCreateParsesDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeClassRepo{}
	svc := newClassServiceWithNow(repo, now)

	end := "2025-07-10T18:00:00Z"
	resp, err := svc.Create(context.Background(), ClassRequest{
		Title:       "Orbital Mechanics",
		Description: "Six-week evening course",
		Instructor:  "R. Sharma",
		Difficulty:  models.DifficultyAdvanced,
		StartDate:   "2025-07-01T18:00:00Z",
		EndDate:     &end,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), repo.created.StartDate)
	require.NotNil(t, repo.created.EndDate)
	assert.Equal(t, models.StatusUpcoming, resp.ComputedStatus)
	assert.True(t, repo.created.IsActive)
}

func TestClassServiceCreateRejectsInvertedDates(t *testing.T) {
	svc := newClassServiceWithNow(&fakeClassRepo{}, time.Now().UTC())

	end := "2025-06-01T00:00:00Z"
	_, err := svc.Create(context.Background(), ClassRequest{
		Title:       "Orbital Mechanics",
		Description: "Six-week evening course",
		Instructor:  "R. Sharma",
		Difficulty:  models.DifficultyAdvanced,
		StartDate:   "2025-07-01T18:00:00Z",
		EndDate:     &end,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

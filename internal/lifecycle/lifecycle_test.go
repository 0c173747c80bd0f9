package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tars-society/tars-club-api/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

func baseClass() models.Class {
	return models.Class{
		ID:              "class-1",
		Title:           "Intro to Robotics",
		Status:          models.StatusUpcoming,
		StartDate:       testNow.Add(-24 * time.Hour),
		MaxParticipants: 30,
		IsActive:        true,
	}
}

func TestStatusArchivedWinsRegardlessOfDates(t *testing.T) {
	eng := NewEngine(nil)

	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
	}{
		{"future start", testNow.Add(48 * time.Hour), nil},
		{"past start no end", testNow.Add(-48 * time.Hour), nil},
		{"past start past end", testNow.Add(-240 * time.Hour), timePtr(testNow.Add(-120 * time.Hour))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseClass()
			c.Status = models.StatusArchived
			c.StartDate = tc.start
			c.EndDate = tc.end

			got, err := eng.Status(c, testNow)
			require.NoError(t, err)
			assert.Equal(t, models.StatusArchived, got)

			joinable, err := eng.Joinable(c, testNow)
			require.NoError(t, err)
			assert.False(t, joinable)
		})
	}
}

func TestStatusUpcomingBeforeStart(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.StartDate = testNow.Add(24 * time.Hour)

	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, got)

	joinable, err := eng.Joinable(c, testNow)
	require.NoError(t, err)
	assert.False(t, joinable)
}

func TestStatusOngoingWithoutEndDate(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.Status = models.StatusOngoing
	c.StartDate = testNow.Add(-24 * time.Hour)

	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOngoing, got)

	joinable, err := eng.Joinable(c, testNow)
	require.NoError(t, err)
	assert.True(t, joinable)
}

func TestStatusCompletedAfterEndDate(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.Status = models.StatusOngoing
	c.StartDate = testNow.Add(-10 * 24 * time.Hour)
	c.EndDate = timePtr(testNow.Add(-5 * 24 * time.Hour))

	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got)

	joinable, err := eng.Joinable(c, testNow)
	require.NoError(t, err)
	assert.False(t, joinable)
}

func TestStatusOngoingAtEndBoundary(t *testing.T) {
	// now == end_date counts as ongoing: the comparison is now <= end.
	eng := NewEngine(nil)
	c := baseClass()
	c.StartDate = testNow.Add(-24 * time.Hour)
	c.EndDate = timePtr(testNow)

	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOngoing, got)

	joinable, err := eng.Joinable(c, testNow)
	require.NoError(t, err)
	assert.True(t, joinable)
}

func TestJoinableFalseWhenInactive(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.IsActive = false
	c.StartDate = testNow.Add(-24 * time.Hour)

	joinable, err := eng.Joinable(c, testNow)
	require.NoError(t, err)
	assert.False(t, joinable)

	// Status is evaluated independently and still reports ongoing.
	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOngoing, got)
}

func TestMissingStartDateFailsLoudly(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.StartDate = time.Time{}

	_, err := eng.Status(c, testNow)
	assert.ErrorIs(t, err, ErrMissingStartDate)

	_, err = eng.Joinable(c, testNow)
	assert.ErrorIs(t, err, ErrMissingStartDate)
}

func TestMissingStartDateStillArchives(t *testing.T) {
	eng := NewEngine(nil)
	c := baseClass()
	c.StartDate = time.Time{}
	c.Status = models.StatusArchived

	got, err := eng.Status(c, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, got)
}

func TestMakeAwareReinterpretsWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	eng := NewEngine(loc)

	naive := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	aware := eng.MakeAware(naive)
	assert.Equal(t, loc, aware.Location())
	assert.Equal(t, 9, aware.Hour())

	// Values that already carry a real offset pass through unchanged.
	zoned := time.Date(2025, 6, 15, 9, 30, 0, 0, loc)
	assert.Equal(t, zoned, eng.MakeAware(zoned))
}

func TestStatusHonorsConfiguredTimezone(t *testing.T) {
	// A naive start of 10:00 in UTC+2 is 08:00 UTC; at 09:00 UTC the class
	// has already started even though the raw wall clock reads later.
	loc := time.FixedZone("UTC+2", 2*3600)
	eng := NewEngine(loc)

	c := baseClass()
	c.Status = models.StatusUpcoming
	c.StartDate = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	got, err := eng.Status(c, now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOngoing, got)
}

func TestModeDerivation(t *testing.T) {
	cases := []struct {
		name     string
		link     *string
		location *string
		want     models.ClassMode
	}{
		{"neither defaults online", nil, nil, models.ModeOnline},
		{"empty strings default online", strPtr(""), strPtr(""), models.ModeOnline},
		{"link only", strPtr("https://meet.example.com/tars"), nil, models.ModeOnline},
		{"location only", nil, strPtr("Lab 204"), models.ModeOffline},
		{"both hybrid", strPtr("https://meet.example.com/tars"), strPtr("Lab 204"), models.ModeHybrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseClass()
			c.MeetingLink = tc.link
			c.Location = tc.location
			assert.Equal(t, tc.want, Mode(c))
		})
	}
}

func TestFullMonotonicInEnrollment(t *testing.T) {
	c := baseClass()
	c.MaxParticipants = 3

	prev := false
	for enrolled := 0; enrolled <= 5; enrolled++ {
		c.EnrolledCount = enrolled
		full := Full(c)
		if prev {
			assert.True(t, full, "fullness must not regress as enrollment grows")
		}
		assert.Equal(t, enrolled >= 3, full)
		prev = full
	}
}

func TestTagListRoundTrip(t *testing.T) {
	r := models.Resource{Tags: " go , robotics,  ml "}
	got := r.TagList()
	assert.Equal(t, []string{"go", "robotics", "ml"}, got)

	// Joining and re-splitting yields the same trimmed fragments.
	rejoined := models.Resource{Tags: "go, robotics, ml"}
	assert.Equal(t, got, rejoined.TagList())
}

func TestTagListEmpty(t *testing.T) {
	r := models.Resource{Tags: ""}
	assert.Empty(t, r.TagList())
}

// Package lifecycle derives the effective state of a class from its stored
// fields and an explicit evaluation time. Every function is pure: nothing is
// cached on the record and results are recomputed on each read.
package lifecycle

import (
	"errors"
	"time"

	"github.com/tars-society/tars-club-api/internal/models"
)

// ErrMissingStartDate signals a data-integrity violation: a class record
// reached the engine without its required start date. The engine fails loudly
// rather than guessing a status.
var ErrMissingStartDate = errors.New("class start date is not set")

// Engine evaluates class lifecycle state. It carries only the timezone in
// which zone-less stored timestamps are interpreted, so a single instance is
// safe for concurrent use.
type Engine struct {
	loc *time.Location
}

// NewEngine constructs an engine. A nil location defaults to UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// MakeAware normalizes a stored timestamp before comparison. Values scanned
// from timestamp-without-time-zone columns surface with UTC as a placeholder
// zone and their wall-clock fields intact; those are reinterpreted in the
// engine's timezone. Values carrying a real offset pass through unchanged.
func (e *Engine) MakeAware(t time.Time) time.Time {
	if t.Location() == time.UTC {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), e.loc)
	}
	return t
}

// Status derives the effective lifecycle state of a class at the given time.
// Explicit archival always wins regardless of dates. A started class with no
// end date is perpetually ongoing unless archived.
func (e *Engine) Status(c models.Class, now time.Time) (models.ClassStatus, error) {
	if c.Status == models.StatusArchived {
		return models.StatusArchived, nil
	}

	if c.StartDate.IsZero() {
		return "", ErrMissingStartDate
	}

	start := e.MakeAware(c.StartDate)
	if now.Before(start) {
		return models.StatusUpcoming, nil
	}

	if c.EndDate != nil {
		end := e.MakeAware(*c.EndDate)
		if now.After(end) {
			return models.StatusCompleted, nil
		}
		return models.StatusOngoing, nil
	}

	return models.StatusOngoing, nil
}

// Joinable reports whether a class accepts joins at the given time: it must
// not be archived or inactive, must have started, and must not have passed a
// set end date. Evaluated independently of Status; the two can disagree at
// boundaries and that is intended.
func (e *Engine) Joinable(c models.Class, now time.Time) (bool, error) {
	if c.Status == models.StatusArchived {
		return false, nil
	}
	if !c.IsActive {
		return false, nil
	}

	if c.StartDate.IsZero() {
		return false, ErrMissingStartDate
	}

	if now.Before(e.MakeAware(c.StartDate)) {
		return false, nil
	}

	if c.EndDate != nil && now.After(e.MakeAware(*c.EndDate)) {
		return false, nil
	}

	return true, nil
}

// Mode derives how a class is delivered from its meeting link and location.
// Classes with neither default to online.
func Mode(c models.Class) models.ClassMode {
	hasOnline := c.MeetingLink != nil && *c.MeetingLink != ""
	hasOffline := c.Location != nil && *c.Location != ""

	switch {
	case hasOnline && hasOffline:
		return models.ModeHybrid
	case hasOffline:
		return models.ModeOffline
	default:
		return models.ModeOnline
	}
}

// Full reports whether enrollment has reached capacity.
func Full(c models.Class) bool {
	return c.EnrolledCount >= c.MaxParticipants
}

package dto

import (
	"time"

	"github.com/tars-society/tars-club-api/internal/lifecycle"
	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/pkg/media"
)

// istZone is the fixed display timezone for class start dates, independent of
// the server's processing timezone.
var istZone = time.FixedZone("IST", 5*3600+1800)

const startDateDisplayLayout = "January 02, 2006 at 03:04 PM"

// ClassResponse is the client-facing shape of a class, carrying the derived
// lifecycle fields alongside the stored ones.
type ClassResponse struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description"`
	Instructor            string             `json:"instructor"`
	Difficulty            models.Difficulty  `json:"difficulty"`
	DifficultyDisplay     string             `json:"difficulty_display"`
	Status                models.ClassStatus `json:"status"`
	ComputedStatus        models.ClassStatus `json:"computed_status"`
	ComputedStatusDisplay string             `json:"computed_status_display"`
	Thumbnail             *string            `json:"thumbnail"`
	StartDate             time.Time          `json:"start_date"`
	StartDateDisplay      string             `json:"start_date_display"`
	EndDate               *time.Time         `json:"end_date"`
	Duration              string             `json:"duration"`
	MaxParticipants       int                `json:"max_participants"`
	EnrolledCount         int                `json:"enrolled_count"`
	IsFull                bool               `json:"is_full"`
	MeetingLink           *string            `json:"meeting_link"`
	Location              *string            `json:"location"`
	Syllabus              *string            `json:"syllabus"`
	Mode                  models.ClassMode   `json:"mode"`
	ModeDisplay           string             `json:"mode_display"`
	IsJoinable            bool               `json:"is_joinable"`
	IsActive              bool               `json:"is_active"`
	Order                 int                `json:"order"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// NewClassResponse maps a stored class and its state derived at now. It fails
// only on a data-integrity violation (missing start date).
func NewClassResponse(c models.Class, now time.Time, eng *lifecycle.Engine, resolver *media.Resolver) (ClassResponse, error) {
	status, err := eng.Status(c, now)
	if err != nil {
		return ClassResponse{}, err
	}
	joinable, err := eng.Joinable(c, now)
	if err != nil {
		return ClassResponse{}, err
	}
	mode := lifecycle.Mode(c)

	return ClassResponse{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		Instructor:            c.Instructor,
		Difficulty:            c.Difficulty,
		DifficultyDisplay:     c.Difficulty.Display(),
		Status:                c.Status,
		ComputedStatus:        status,
		ComputedStatusDisplay: status.Display(),
		Thumbnail:             resolver.OptionalURL(c.Thumbnail),
		StartDate:             c.StartDate,
		StartDateDisplay:      eng.MakeAware(c.StartDate).In(istZone).Format(startDateDisplayLayout),
		EndDate:               c.EndDate,
		Duration:              c.Duration,
		MaxParticipants:       c.MaxParticipants,
		EnrolledCount:         c.EnrolledCount,
		IsFull:                lifecycle.Full(c),
		MeetingLink:           c.MeetingLink,
		Location:              c.Location,
		Syllabus:              resolver.OptionalURL(c.Syllabus),
		Mode:                  mode,
		ModeDisplay:           mode.Display(),
		IsJoinable:            joinable,
		IsActive:              c.IsActive,
		Order:                 c.Order,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}, nil
}

// NewClassResponses maps a list preserving order.
func NewClassResponses(classes []models.Class, now time.Time, eng *lifecycle.Engine, resolver *media.Resolver) ([]ClassResponse, error) {
	out := make([]ClassResponse, 0, len(classes))
	for _, c := range classes {
		resp, err := NewClassResponse(c, now, eng, resolver)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

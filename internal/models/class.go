package models

import "time"

// Difficulty enumerates class difficulty levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficultyLabels = map[Difficulty]string{
	DifficultyBeginner:     "Beginner",
	DifficultyIntermediate: "Intermediate",
	DifficultyAdvanced:     "Advanced",
}

// Display returns the human-readable label, falling back to the raw value.
func (d Difficulty) Display() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return string(d)
}

// ClassStatus enumerates the stored lifecycle states of a class. The stored
// value is only authoritative for archival; the effective state is derived
// from the dates on every read.
type ClassStatus string

const (
	StatusUpcoming  ClassStatus = "upcoming"
	StatusOngoing   ClassStatus = "ongoing"
	StatusCompleted ClassStatus = "completed"
	StatusArchived  ClassStatus = "archived"
)

var classStatusLabels = map[ClassStatus]string{
	StatusUpcoming:  "Upcoming",
	StatusOngoing:   "Ongoing",
	StatusCompleted: "Completed",
	StatusArchived:  "Archived",
}

// Display returns the human-readable label for the status.
func (s ClassStatus) Display() string {
	if label, ok := classStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// ClassMode describes how a class is delivered. It is never stored; it is
// derived from the meeting link and location fields.
type ClassMode string

const (
	ModeOnline  ClassMode = "online"
	ModeOffline ClassMode = "offline"
	ModeHybrid  ClassMode = "hybrid"
)

var classModeLabels = map[ClassMode]string{
	ModeOnline:  "Online",
	ModeOffline: "Offline",
	ModeHybrid:  "Offline + Online",
}

// Display returns the human-readable label for the mode.
func (m ClassMode) Display() string {
	if label, ok := classModeLabels[m]; ok {
		return label
	}
	return "Online"
}

// Class represents a class or workshop offered by the club.
type Class struct {
	ID              string      `db:"id" json:"id"`
	Title           string      `db:"title" json:"title"`
	Description     string      `db:"description" json:"description"`
	Instructor      string      `db:"instructor" json:"instructor"`
	Difficulty      Difficulty  `db:"difficulty" json:"difficulty"`
	Status          ClassStatus `db:"status" json:"status"`
	Thumbnail       *string     `db:"thumbnail" json:"thumbnail,omitempty"`
	StartDate       time.Time   `db:"start_date" json:"start_date"`
	EndDate         *time.Time  `db:"end_date" json:"end_date,omitempty"`
	Duration        string      `db:"duration" json:"duration"`
	MaxParticipants int         `db:"max_participants" json:"max_participants"`
	EnrolledCount   int         `db:"enrolled_count" json:"enrolled_count"`
	MeetingLink     *string     `db:"meeting_link" json:"meeting_link,omitempty"`
	Location        *string     `db:"location" json:"location,omitempty"`
	Syllabus        *string     `db:"syllabus" json:"syllabus,omitempty"`
	IsActive        bool        `db:"is_active" json:"is_active"`
	Order           int         `db:"display_order" json:"order"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

package models

import "time"

// Sponsor represents a club sponsor or partner organisation.
type Sponsor struct {
	ID                  string    `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Logo                string    `db:"logo" json:"logo"`
	Website             *string   `db:"website" json:"website,omitempty"`
	CollaborationAgenda string    `db:"collaboration_agenda" json:"collaboration_agenda"`
	CollaborationDate   time.Time `db:"collaboration_date" json:"collaboration_date"`
	IsActive            bool      `db:"is_active" json:"is_active"`
	Order               int       `db:"display_order" json:"order"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

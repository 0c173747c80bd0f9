package models

import "time"

// SiteSettings holds site-wide club branding. The table is constrained to a
// single row; the repository rejects any second insert.
type SiteSettings struct {
	ID             string    `db:"id" json:"id"`
	ClubName       string    `db:"club_name" json:"club_name"`
	ClubFullName   string    `db:"club_full_name" json:"club_full_name"`
	ClubMotto      string    `db:"club_motto" json:"club_motto"`
	ClubLogo       *string   `db:"club_logo" json:"club_logo,omitempty"`
	UniversityLogo *string   `db:"university_logo" json:"university_logo,omitempty"`
	HeroBackground *string   `db:"hero_background" json:"hero_background,omitempty"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

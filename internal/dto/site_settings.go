package dto

import (
	"time"

	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/pkg/media"
)

// SiteSettingsResponse is the client-facing shape of the settings singleton.
type SiteSettingsResponse struct {
	ID             string    `json:"id"`
	ClubName       string    `json:"club_name"`
	ClubFullName   string    `json:"club_full_name"`
	ClubMotto      string    `json:"club_motto"`
	ClubLogo       *string   `json:"club_logo"`
	UniversityLogo *string   `json:"university_logo"`
	HeroBackground *string   `json:"hero_background"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSiteSettingsResponse maps the stored record, resolving image references
// to absolute blob-storage URLs.
func NewSiteSettingsResponse(s models.SiteSettings, resolver *media.Resolver) SiteSettingsResponse {
	return SiteSettingsResponse{
		ID:             s.ID,
		ClubName:       s.ClubName,
		ClubFullName:   s.ClubFullName,
		ClubMotto:      s.ClubMotto,
		ClubLogo:       resolver.OptionalURL(s.ClubLogo),
		UniversityLogo: resolver.OptionalURL(s.UniversityLogo),
		HeroBackground: resolver.OptionalURL(s.HeroBackground),
		UpdatedAt:      s.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/pkg/media"
)

// SponsorResponse is the client-facing shape of a sponsor.
type SponsorResponse struct {
	ID                         string    `json:"id"`
	Name                       string    `json:"name"`
	Logo                       *string   `json:"logo"`
	Website                    *string   `json:"website"`
	CollaborationAgenda        string    `json:"collaboration_agenda"`
	CollaborationDate          time.Time `json:"collaboration_date"`
	CollaborationDateFormatted string    `json:"collaboration_date_formatted"`
	IsActive                   bool      `json:"is_active"`
	Order                      int       `json:"order"`
}

// NewSponsorResponse maps a stored sponsor, resolving the logo reference and
// formatting the collaboration date as "Month YYYY".
func NewSponsorResponse(s models.Sponsor, resolver *media.Resolver) SponsorResponse {
	return SponsorResponse{
		ID:                         s.ID,
		Name:                       s.Name,
		Logo:                       resolver.URL(s.Logo),
		Website:                    s.Website,
		CollaborationAgenda:        s.CollaborationAgenda,
		CollaborationDate:          s.CollaborationDate,
		CollaborationDateFormatted: s.CollaborationDate.Format("January 2006"),
		IsActive:                   s.IsActive,
		Order:                      s.Order,
	}
}

// NewSponsorResponses maps a list preserving order.
func NewSponsorResponses(sponsors []models.Sponsor, resolver *media.Resolver) []SponsorResponse {
	out := make([]SponsorResponse, 0, len(sponsors))
	for _, s := range sponsors {
		out = append(out, NewSponsorResponse(s, resolver))
	}
	return out
}

package dto

import "github.com/tars-society/tars-club-api/internal/models"

// SocialLinkResponse is the client-facing shape of a social link.
type SocialLinkResponse struct {
	ID              string          `json:"id"`
	Platform        models.Platform `json:"platform"`
	PlatformDisplay string          `json:"platform_display"`
	URL             string          `json:"url"`
	IconClass       string          `json:"icon_class"`
	IsActive        bool            `json:"is_active"`
	Order           int             `json:"order"`
}

// NewSocialLinkResponse maps a stored social link with its platform label.
func NewSocialLinkResponse(l models.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:              l.ID,
		Platform:        l.Platform,
		PlatformDisplay: l.Platform.Display(),
		URL:             l.URL,
		IconClass:       l.IconClass,
		IsActive:        l.IsActive,
		Order:           l.Order,
	}
}

// NewSocialLinkResponses maps a list preserving order.
func NewSocialLinkResponses(links []models.SocialLink) []SocialLinkResponse {
	out := make([]SocialLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, NewSocialLinkResponse(l))
	}
	return out
}

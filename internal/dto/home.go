package dto

// HomeResponse bundles everything the home page needs in one request. A
// missing settings singleton degrades to null, never an error.
type HomeResponse struct {
	SiteSettings *SiteSettingsResponse `json:"site_settings"`
	Sponsors     []SponsorResponse     `json:"sponsors"`
	SocialLinks  []SocialLinkResponse  `json:"social_links"`
}

package models

import "time"

// Platform enumerates the supported social platforms.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformGitHub    Platform = "github"
	PlatformYouTube   Platform = "youtube"
	PlatformDiscord   Platform = "discord"
	PlatformEmail     Platform = "email"
	PlatformWebsite   Platform = "website"
	PlatformOther     Platform = "other"
)

var platformLabels = map[Platform]string{
	PlatformFacebook:  "Facebook",
	PlatformTwitter:   "Twitter",
	PlatformInstagram: "Instagram",
	PlatformLinkedIn:  "LinkedIn",
	PlatformGitHub:    "GitHub",
	PlatformYouTube:   "YouTube",
	PlatformDiscord:   "Discord",
	PlatformEmail:     "Email",
	PlatformWebsite:   "Website",
	PlatformOther:     "Other",
}

// Display returns the human-readable label, falling back to the raw value.
func (p Platform) Display() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return string(p)
}

// SocialLink represents a social media link shown on the site. CreatedAt is
// not exposed to clients; it only breaks ordering ties by insertion order.
type SocialLink struct {
	ID        string    `db:"id" json:"id"`
	Platform  Platform  `db:"platform" json:"platform"`
	URL       string    `db:"url" json:"url"`
	IconClass string    `db:"icon_class" json:"icon_class"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	Order     int       `db:"display_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

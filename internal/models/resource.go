package models

import (
	"strings"
	"time"
)

// ResourceCategory enumerates learning resource categories.
type ResourceCategory string

const (
	CategoryTutorial      ResourceCategory = "tutorial"
	CategoryDocumentation ResourceCategory = "documentation"
	CategoryVideo         ResourceCategory = "video"
	CategoryArticle       ResourceCategory = "article"
	CategoryBook          ResourceCategory = "book"
	CategoryTool          ResourceCategory = "tool"
	CategoryProject       ResourceCategory = "project"
	CategoryOther         ResourceCategory = "other"
)

var resourceCategoryLabels = map[ResourceCategory]string{
	CategoryTutorial:      "Tutorial",
	CategoryDocumentation: "Documentation",
	CategoryVideo:         "Video",
	CategoryArticle:       "Article",
	CategoryBook:          "Book",
	CategoryTool:          "Tool",
	CategoryProject:       "Project",
	CategoryOther:         "Other",
}

// Display returns the human-readable label, falling back to the raw value.
func (c ResourceCategory) Display() string {
	if label, ok := resourceCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Resource represents a learning resource or material.
type Resource struct {
	ID            string           `db:"id" json:"id"`
	Title         string           `db:"title" json:"title"`
	Description   string           `db:"description" json:"description"`
	Category      ResourceCategory `db:"category" json:"category"`
	Thumbnail     *string          `db:"thumbnail" json:"thumbnail,omitempty"`
	File          *string          `db:"file" json:"file,omitempty"`
	ExternalLink  *string          `db:"external_link" json:"external_link,omitempty"`
	Author        *string          `db:"author" json:"author,omitempty"`
	Tags          string           `db:"tags" json:"tags"`
	IsFeatured    bool             `db:"is_featured" json:"is_featured"`
	IsActive      bool             `db:"is_active" json:"is_active"`
	ViewCount     int              `db:"view_count" json:"view_count"`
	DownloadCount int              `db:"download_count" json:"download_count"`
	Order         int              `db:"display_order" json:"order"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}

// TagList splits the comma-separated tags string into trimmed fragments,
// preserving order. An empty string yields an empty slice.
func (r Resource) TagList() []string {
	if r.Tags == "" {
		return []string{}
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}

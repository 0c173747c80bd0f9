package dto

import (
	"time"

	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/pkg/media"
)

// ResourceResponse is the client-facing shape of a learning resource.
type ResourceResponse struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Category        models.ResourceCategory `json:"category"`
	CategoryDisplay string                  `json:"category_display"`
	Thumbnail       *string                 `json:"thumbnail"`
	File            *string                 `json:"file"`
	ExternalLink    *string                 `json:"external_link"`
	Author          *string                 `json:"author"`
	Tags            string                  `json:"tags"`
	TagList         []string                `json:"tag_list"`
	IsFeatured      bool                    `json:"is_featured"`
	IsActive        bool                    `json:"is_active"`
	ViewCount       int                     `json:"view_count"`
	DownloadCount   int                     `json:"download_count"`
	Order           int                     `json:"order"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// NewResourceResponse maps a stored resource with its derived tag list and
// resolved media references.
func NewResourceResponse(r models.Resource, resolver *media.Resolver) ResourceResponse {
	return ResourceResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		CategoryDisplay: r.Category.Display(),
		Thumbnail:       resolver.OptionalURL(r.Thumbnail),
		File:            resolver.OptionalURL(r.File),
		ExternalLink:    r.ExternalLink,
		Author:          r.Author,
		Tags:            r.Tags,
		TagList:         r.TagList(),
		IsFeatured:      r.IsFeatured,
		IsActive:        r.IsActive,
		ViewCount:       r.ViewCount,
		DownloadCount:   r.DownloadCount,
		Order:           r.Order,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NewResourceResponses maps a list preserving order.
func NewResourceResponses(resources []models.Resource, resolver *media.Resolver) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewResourceResponse(r, resolver))
	}
	return out
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/service"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/response"
)

type siteSettingsProvider interface {
	List(ctx context.Context) ([]dto.SiteSettingsResponse, error)
	Get(ctx context.Context, id string) (*dto.SiteSettingsResponse, error)
	Create(ctx context.Context, req service.CreateSiteSettingsRequest) (*dto.SiteSettingsResponse, error)
	Update(ctx context.Context, id string, req service.UpdateSiteSettingsRequest) (*dto.SiteSettingsResponse, error)
}

// SiteSettingsHandler wires HTTP endpoints to the site settings service.
type SiteSettingsHandler struct {
	service siteSettingsProvider
}

// NewSiteSettingsHandler creates a new handler.
func NewSiteSettingsHandler(svc siteSettingsProvider) *SiteSettingsHandler {
	return &SiteSettingsHandler{service: svc}
}

// List godoc
// @Summary List site settings
// @Description Zero-or-one element list holding the settings singleton
// @Tags Public
// @Produce json
// @Success 200 {array} dto.SiteSettingsResponse
// @Router /site-settings [get]
func (h *SiteSettingsHandler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get serves the settings row by identifier.
func (h *SiteSettingsHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Seed site settings
// @Description Creates the settings singleton; a second row is rejected
// @Tags Admin
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/site-settings [post]
func (h *SiteSettingsHandler) Create(c *gin.Context) {
	var req service.CreateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid site settings payload"))
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out)
}

// Update modifies the settings singleton in place.
func (h *SiteSettingsHandler) Update(c *gin.Context) {
	var req service.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid site settings payload"))
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}

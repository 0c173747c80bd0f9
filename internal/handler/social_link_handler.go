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

type socialLinkProvider interface {
	ListActive(ctx context.Context) ([]dto.SocialLinkResponse, error)
	Get(ctx context.Context, id string) (*dto.SocialLinkResponse, error)
	Create(ctx context.Context, req service.SocialLinkRequest) (*dto.SocialLinkResponse, error)
	Update(ctx context.Context, id string, req service.SocialLinkRequest) (*dto.SocialLinkResponse, error)
	Delete(ctx context.Context, id string) error
}

// SocialLinkHandler wires HTTP endpoints to the social link service.
type SocialLinkHandler struct {
	service socialLinkProvider
}

// NewSocialLinkHandler creates a new handler.
func NewSocialLinkHandler(svc socialLinkProvider) *SocialLinkHandler {
	return &SocialLinkHandler{service: svc}
}

// List godoc
// @Summary List social links
// @Description Active social links ordered for display
// @Tags Public
// @Produce json
// @Success 200 {array} dto.SocialLinkResponse
// @Router /social-links [get]
func (h *SocialLinkHandler) List(c *gin.Context) {
	out, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get serves a social link by identifier.
func (h *SocialLinkHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a social link.
func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req service.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid social link payload"))
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out)
}

// Update replaces a social link's fields.
func (h *SocialLinkHandler) Update(c *gin.Context) {
	var req service.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid social link payload"))
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}

// Delete removes a social link.
func (h *SocialLinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

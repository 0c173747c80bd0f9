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

type sponsorProvider interface {
	ListActive(ctx context.Context) ([]dto.SponsorResponse, error)
	Get(ctx context.Context, id string) (*dto.SponsorResponse, error)
	Create(ctx context.Context, req service.SponsorRequest) (*dto.SponsorResponse, error)
	Update(ctx context.Context, id string, req service.SponsorRequest) (*dto.SponsorResponse, error)
	Delete(ctx context.Context, id string) error
}

// SponsorHandler wires HTTP endpoints to the sponsor service.
type SponsorHandler struct {
	service sponsorProvider
}

// NewSponsorHandler creates a new handler.
func NewSponsorHandler(svc sponsorProvider) *SponsorHandler {
	return &SponsorHandler{service: svc}
}

// List godoc
// @Summary List sponsors
// @Description Active sponsors ordered for display
// @Tags Public
// @Produce json
// @Success 200 {array} dto.SponsorResponse
// @Router /sponsors [get]
func (h *SponsorHandler) List(c *gin.Context) {
	out, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get serves a sponsor by identifier.
func (h *SponsorHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a sponsor.
func (h *SponsorHandler) Create(c *gin.Context) {
	var req service.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid sponsor payload"))
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out)
}

// Update replaces a sponsor's fields.
func (h *SponsorHandler) Update(c *gin.Context) {
	var req service.SponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid sponsor payload"))
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}

// Delete removes a sponsor.
func (h *SponsorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

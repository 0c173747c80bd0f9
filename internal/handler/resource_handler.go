package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/repository"
	"github.com/tars-society/tars-club-api/internal/service"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/response"
)

type resourceProvider interface {
	ListActive(ctx context.Context, filter repository.ResourceFilter) ([]dto.ResourceResponse, error)
	Get(ctx context.Context, id string) (*dto.ResourceResponse, error)
	Create(ctx context.Context, req service.ResourceRequest) (*dto.ResourceResponse, error)
	Update(ctx context.Context, id string, req service.ResourceRequest) (*dto.ResourceResponse, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler wires HTTP endpoints to the resource service.
type ResourceHandler struct {
	service resourceProvider
}

// NewResourceHandler creates a new handler.
func NewResourceHandler(svc resourceProvider) *ResourceHandler {
	return &ResourceHandler{service: svc}
}

// List godoc
// @Summary List resources
// @Description Active learning resources ordered for display
// @Tags Public
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Filter by featured flag"
// @Param search query string false "Search in title and description"
// @Success 200 {array} dto.ResourceResponse
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := repository.ResourceFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.New(appErrors.ErrValidation.Code, http.StatusBadRequest, "featured must be a boolean"))
			return
		}
		filter.Featured = &featured
	}
	out, err := h.service.ListActive(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get serves a resource by identifier.
func (h *ResourceHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a resource.
func (h *ResourceHandler) Create(c *gin.Context) {
	var req service.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resource payload"))
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out)
}

// Update replaces a resource's fields.
func (h *ResourceHandler) Update(c *gin.Context) {
	var req service.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resource payload"))
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}

// Delete removes a resource.
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

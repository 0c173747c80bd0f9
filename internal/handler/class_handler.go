package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/internal/repository"
	"github.com/tars-society/tars-club-api/internal/service"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/response"
)

type classProvider interface {
	ListActive(ctx context.Context, filter repository.ClassFilter) ([]dto.ClassResponse, error)
	Get(ctx context.Context, id string) (*dto.ClassResponse, error)
	Create(ctx context.Context, req service.ClassRequest) (*dto.ClassResponse, error)
	Update(ctx context.Context, id string, req service.ClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id string) error
}

// ClassHandler wires HTTP endpoints to the class service.
type ClassHandler struct {
	service classProvider
}

// NewClassHandler creates a new handler.
func NewClassHandler(svc classProvider) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes
// @Description Active classes with lifecycle state derived at request time
// @Tags Public
// @Produce json
// @Param difficulty query string false "Filter by difficulty"
// @Param search query string false "Search in title and description"
// @Success 200 {array} dto.ClassResponse
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	filter := repository.ClassFilter{
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}
	out, err := h.service.ListActive(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get serves a class by identifier.
func (h *ClassHandler) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create registers a class.
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, out)
}

// Update replaces a class's fields.
func (h *ClassHandler) Update(c *gin.Context) {
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}

// Delete removes a class.
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

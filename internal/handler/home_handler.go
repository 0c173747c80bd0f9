package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tars-society/tars-club-api/internal/dto"
	"github.com/tars-society/tars-club-api/pkg/response"
)

type homeProvider interface {
	Get(ctx context.Context) (dto.HomeResponse, bool, error)
}

// HomeHandler serves the landing page aggregate.
type HomeHandler struct {
	service homeProvider
}

// NewHomeHandler constructs a home handler.
func NewHomeHandler(svc homeProvider) *HomeHandler {
	return &HomeHandler{service: svc}
}

// Get godoc
// @Summary Home page aggregate
// @Description Site settings, sponsors and social links in one response
// @Tags Public
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (h *HomeHandler) Get(c *gin.Context) {
	resp, hit, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, resp)
}

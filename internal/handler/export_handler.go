package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tars-society/tars-club-api/internal/service"
	"github.com/tars-society/tars-club-api/pkg/response"
)

type exportProvider interface {
	SponsorRoster(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
	ResourceCatalog(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
}

// ExportHandler streams administrative exports.
type ExportHandler struct {
	service exportProvider
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc exportProvider) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Sponsors godoc
// @Summary Export sponsor roster
// @Tags Admin
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/export/sponsors [get]
func (h *ExportHandler) Sponsors(c *gin.Context) {
	file, err := h.service.SponsorRoster(c.Request.Context(), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.stream(c, file)
}

// Resources godoc
// @Summary Export resource catalog
// @Tags Admin
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/export/resources [get]
func (h *ExportHandler) Resources(c *gin.Context) {
	file, err := h.service.ResourceCatalog(c.Request.Context(), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.stream(c, file)
}

func (h *ExportHandler) stream(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	return service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
}

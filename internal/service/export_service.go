package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/repository"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
	"github.com/tars-society/tars-club-api/pkg/export"
)

// ExportFormat enumerates supported export encodings.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders administrative datasets as downloadable files.
type ExportService struct {
	sponsors  sponsorRepository
	resources resourceRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(sponsors sponsorRepository, resources resourceRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sponsors:  sponsors,
		resources: resources,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// SponsorRoster renders the active sponsor roster in the requested format.
func (s *ExportService) SponsorRoster(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	sponsors, err := s.sponsors.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sponsors")
	}

	data := export.Dataset{
		Headers: []string{"Name", "Website", "Collaboration Agenda", "Collaboration Date"},
	}
	for _, sp := range sponsors {
		website := ""
		if sp.Website != nil {
			website = *sp.Website
		}
		data.Rows = append(data.Rows, map[string]string{
			"Name":                 sp.Name,
			"Website":              website,
			"Collaboration Agenda": sp.CollaborationAgenda,
			"Collaboration Date":   sp.CollaborationDate.Format("January 2006"),
		})
	}
	return s.render(data, "Sponsor Roster", "sponsors", format)
}

// ResourceCatalog renders the active resource catalog in the requested format.
func (s *ExportService) ResourceCatalog(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	resources, err := s.resources.ListActive(ctx, repository.ResourceFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resources")
	}

	data := export.Dataset{
		Headers: []string{"Title", "Category", "Author", "Tags", "Views", "Downloads"},
	}
	for _, r := range resources {
		author := ""
		if r.Author != nil {
			author = *r.Author
		}
		data.Rows = append(data.Rows, map[string]string{
			"Title":     r.Title,
			"Category":  r.Category.Display(),
			"Author":    author,
			"Tags":      strings.Join(r.TagList(), "; "),
			"Views":     strconv.Itoa(r.ViewCount),
			"Downloads": strconv.Itoa(r.DownloadCount),
		})
	}
	return s.render(data, "Resource Catalog", "resources", format)
}

func (s *ExportService) render(data export.Dataset, title, basename string, format ExportFormat) (*ExportFile, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case FormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s_%s.csv", basename, stamp),
		}, nil
	case FormatPDF:
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s_%s.pdf", basename, stamp),
		}, nil
	default:
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}
}

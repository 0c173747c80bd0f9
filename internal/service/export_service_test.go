package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tars-society/tars-club-api/internal/models"
	"github.com/tars-society/tars-club-api/internal/repository"
	appErrors "github.com/tars-society/tars-club-api/pkg/errors"
)

type fakeResourceRepo struct {
	resources []models.Resource
	err       error
}

func (f *fakeResourceRepo) ListActive(context.Context, repository.ResourceFilter) ([]models.Resource, error) {
	return f.resources, f.err
}

func (f *fakeResourceRepo) FindByID(context.Context, string) (*models.Resource, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeResourceRepo) Create(context.Context, *models.Resource) error { return nil }
func (f *fakeResourceRepo) Update(context.Context, *models.Resource) error { return nil }
func (f *fakeResourceRepo) Delete(context.Context, string) error           { return nil }

func TestExportServiceSponsorRosterCSV(t *testing.T) {
	website := "https://acme.example"
	svc := NewExportService(&fakeSponsorRepo{sponsors: []models.Sponsor{{
		Name:                "Acme",
		Website:             &website,
		CollaborationAgenda: "Telescope sponsorship",
		CollaborationDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}}}, nil, zap.NewNop())

	file, err := svc.SponsorRoster(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "sponsors_"))

	content := string(file.Content)
	assert.Contains(t, content, "Name,Website,Collaboration Agenda,Collaboration Date")
	assert.Contains(t, content, "Acme,https://acme.example,Telescope sponsorship,March 2025")
}

func TestExportServiceSponsorRosterPDF(t *testing.T) {
	svc := NewExportService(&fakeSponsorRepo{}, nil, zap.NewNop())

	file, err := svc.SponsorRoster(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportServiceResourceCatalogCSV(t *testing.T) {
	author := "J. Doe"
	svc := NewExportService(&fakeSponsorRepo{}, &fakeResourceRepo{resources: []models.Resource{{
		Title:         "Stellarium Guide",
		Category:      models.CategoryTool,
		Author:        &author,
		Tags:          "astronomy, software",
		ViewCount:     12,
		DownloadCount: 3,
	}}}, zap.NewNop())

	file, err := svc.ResourceCatalog(context.Background(), FormatCSV)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "Title,Category,Author,Tags,Views,Downloads")
	assert.Contains(t, content, "Stellarium Guide,Tool,J. Doe,astronomy; software,12,3")
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&fakeSponsorRepo{}, nil, zap.NewNop())

	_, err := svc.SponsorRoster(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

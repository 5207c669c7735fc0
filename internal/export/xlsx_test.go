package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"renova/internal/domain"
	"renova/internal/export"
)

func TestWorkbook_ContentSheets(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	items := []domain.PortfolioItem{{
		ID:         1,
		Title:      "Kitchen refit",
		MainImage:  "https://img.example/main.jpg",
		OtherImage: domain.ImageList{"https://img.example/g1.jpg", "https://img.example/g2.jpg"},
		AltText:    "renovated kitchen",
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
	prestations := []domain.Prestation{{
		ID:          2,
		Name:        "Peinture",
		BannerImage: "https://img.example/banner.jpg",
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	wb := export.NewWorkbook()
	assert.NoError(t, wb.AddPortfolioSheet(items))
	assert.NoError(t, wb.AddPrestationSheet(prestations))

	var buf bytes.Buffer
	assert.NoError(t, wb.WriteTo(&buf))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue("Portfolio", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Kitchen refit", title)

	gallery, err := f.GetCellValue("Portfolio", "E2")
	assert.NoError(t, err)
	assert.Contains(t, gallery, "https://img.example/g1.jpg")
	assert.Contains(t, gallery, "https://img.example/g2.jpg")

	name, err := f.GetCellValue("Prestations", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Peinture", name)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename()

	assert.Regexp(t, `^content_\d{4}-\d{2}-\d{2}\.xlsx$`, name)
}

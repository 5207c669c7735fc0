package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"renova/internal/domain"
)

// Column layouts for the two content sheets.
var (
	portfolioColumns  = []string{"ID", "Title", "Description", "Main Image", "Gallery", "Alt Text", "Created At", "Updated At"}
	prestationColumns = []string{"ID", "Name", "Description", "Banner Image", "Gallery", "Created At", "Updated At"}
)

// Workbook builds an xlsx snapshot of the site content, one sheet per
// entity type, for the back office.
type Workbook struct {
	file *excelize.File
}

// NewWorkbook creates an empty content workbook.
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// AddPortfolioSheet writes the portfolio items to a "Portfolio" sheet.
func (w *Workbook) AddPortfolioSheet(items []domain.PortfolioItem) error {
	const sheet = "Portfolio"
	if _, err := w.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := w.writeRow(sheet, 1, portfolioColumns); err != nil {
		return err
	}
	for i := range items {
		item := &items[i]
		row := []string{
			strconv.FormatInt(item.ID, 10),
			item.Title,
			item.Description,
			item.MainImage,
			strings.Join(item.OtherImage, "\n"),
			item.AltText,
			item.CreatedAt.Format(time.RFC3339),
			item.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.writeRow(sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// AddPrestationSheet writes the prestations to a "Prestations" sheet.
func (w *Workbook) AddPrestationSheet(prestations []domain.Prestation) error {
	const sheet = "Prestations"
	if _, err := w.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := w.writeRow(sheet, 1, prestationColumns); err != nil {
		return err
	}
	for i := range prestations {
		p := &prestations[i]
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Description,
			p.BannerImage,
			strings.Join(p.OtherImage, "\n"),
			p.CreatedAt.Format(time.RFC3339),
			p.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.writeRow(sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo finalizes the workbook and streams it to w. The default sheet
// excelize creates is dropped so the content sheets come first.
func (w *Workbook) WriteTo(out io.Writer) error {
	_ = w.file.DeleteSheet("Sheet1")
	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return w.file.Close()
}

func (w *Workbook) writeRow(sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	converted := make([]interface{}, len(values))
	for i, v := range values {
		converted[i] = v
	}
	if err := w.file.SetSheetRow(sheet, cell, &converted); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}

// BuildFilename returns the attachment filename for Content-Disposition.
// Format: content_{YYYY-MM-DD}.xlsx
func BuildFilename() string {
	return fmt.Sprintf("content_%s.xlsx", time.Now().Format("2006-01-02"))
}

package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"renova/internal/export"
	"renova/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams back-office content exports.
type ExportHandler struct {
	portfolioService  service.PortfolioService
	prestationService service.PrestationService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(portfolioService service.PortfolioService, prestationService service.PrestationService) *ExportHandler {
	return &ExportHandler{portfolioService: portfolioService, prestationService: prestationService}
}

// Content handles GET /api/export/content
// @Summary Export site content as a spreadsheet
// @Description Download all portfolio items and prestations as an xlsx workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 "Workbook attachment"
// @Security CookieAuth
// @Router /export/content [get]
func (h *ExportHandler) Content(c *gin.Context) {
	items, err := h.portfolioService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	prestations, err := h.prestationService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	wb := export.NewWorkbook()
	if err := wb.AddPortfolioSheet(items); err != nil {
		HandleError(c, err)
		return
	}
	if err := wb.AddPrestationSheet(prestations); err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := wb.WriteTo(&buf); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BuildFilename()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

package report

import (
	"errors"
	"fmt"

	"go-legal/internal/features/cases"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// ExportHistory godoc
// @Summary Export the transition history of a case
// @Tags reports
// @Produce application/octet-stream
// @Param id path string true "Case ID"
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Case not found"
// @Security BearerAuth
// @Router /api/cases/{id}/transitions/export [get]
func (c *ReportController) ExportHistory(ctx *fiber.Ctx) error {
	format := ctx.Query("format", FormatXLSX)
	if format != FormatXLSX && format != FormatCSV {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be xlsx or csv"})
	}

	data, filename, err := c.ReportService.ExportTransitionHistory(ctx.UserContext(), ctx.Params("id"), format)
	if err != nil {
		if errors.Is(err, cases.ErrCaseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == FormatCSV {
		contentType = "text/csv"
	}
	ctx.Set("Content-Type", contentType)
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}

package report

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
}

func NewReportApi(reportController *ReportController, config *config.Config) *ReportApi {
	return &ReportApi{
		ReportController: reportController,
		Config:           config,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	app.Get("/api/cases/:id/transitions/export",
		middleware.AuthMiddleware(api.Config.SkipAuth),
		middleware.RequireRoles(common_models.RoleAdmin, common_models.RoleAttorney, common_models.RoleParalegal),
		api.ReportController.ExportHistory,
	)
}

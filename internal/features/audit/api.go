package audit

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	controller *AuditController
	config     *config.Config
}

func NewAuditApi(controller *AuditController, config *config.Config) *AuditApi {
	return &AuditApi{
		controller: controller,
		config:     config,
	}
}

func (h *AuditApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	reviewers := middleware.RequireRoles(common_models.RoleAdmin, common_models.RoleAttorney)

	audit := app.Group("/api/audit-logs", auth)
	audit.Get("/", reviewers, h.controller.ListLogs)

	app.Get("/api/cases/:id/audit", auth, reviewers, h.controller.CaseTrail)
}

package transition

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TransitionApi struct {
	controller *TransitionController
	config     *config.Config
}

func NewTransitionApi(controller *TransitionController, config *config.Config) *TransitionApi {
	return &TransitionApi{
		controller: controller,
		config:     config,
	}
}

func (h *TransitionApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	staff := middleware.RequireRoles(common_models.RoleAdmin, common_models.RoleAttorney, common_models.RoleParalegal, common_models.RoleAssistant)

	app.Post("/api/cases/:id/transitions", auth, staff, h.controller.RequestTransition)
	app.Get("/api/cases/:id/transitions", auth, h.controller.GetHistory)
	app.Get("/api/cases/:id/transitions/available", auth, h.controller.GetAvailable)

	approvals := app.Group("/api/approvals", auth)
	approvals.Get("/pending", h.controller.GetPendingApprovals)
	approvals.Post("/:id/approve", h.controller.Approve)
	approvals.Post("/:id/reject", h.controller.Reject)

	notifications := app.Group("/api/notifications", auth)
	notifications.Get("/", h.controller.GetNotifications)
	notifications.Put("/:id/read", h.controller.MarkAsRead)
}

package lifecycle

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LifecycleApi struct {
	controller *LifecycleController
	config     *config.Config
}

func NewLifecycleApi(controller *LifecycleController, config *config.Config) *LifecycleApi {
	return &LifecycleApi{
		controller: controller,
		config:     config,
	}
}

func (h *LifecycleApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	staff := middleware.RequireRoles(common_models.RoleAdmin, common_models.RoleAttorney, common_models.RoleParalegal)

	app.Get("/api/cases/:id/progress", auth, h.controller.GetProgress)
	app.Get("/api/cases/:id/events", auth, h.controller.GetEvents)
	app.Put("/api/cases/:id/status", auth, staff, h.controller.UpdateStatus)
	app.Post("/api/cases/:id/validate", auth, h.controller.ValidateTransition)
}

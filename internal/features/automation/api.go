package automation

import (
	common_models "go-legal/internal/common/models"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AutomationApi struct {
	controller *AutomationController
	config     *config.Config
}

func NewAutomationApi(controller *AutomationController, config *config.Config) *AutomationApi {
	return &AutomationApi{
		controller: controller,
		config:     config,
	}
}

func (h *AutomationApi) Setup(app *fiber.App) {
	group := app.Group("/api/automation", middleware.AuthMiddleware(h.config.SkipAuth), middleware.RequireRoles(common_models.RoleAdmin))

	group.Get("/rules", h.controller.ListRules)
	group.Get("/rules/:id", h.controller.GetRule)
	group.Post("/rules", h.controller.CreateRule)
	group.Put("/rules/:id/active", h.controller.SetActive)
	group.Delete("/rules/:id", h.controller.DeleteRule)
}

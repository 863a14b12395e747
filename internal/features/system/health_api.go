package system

import (
	"go-legal/internal/common/api"
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	controller *HealthController
	config     *config.Config
}

func NewHealthApi(controller *HealthController, cfg *config.Config) api.Route {
	return &HealthApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers health and identity routes
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", h.controller.Health)
	app.Get("/api/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.GetCurrentUser)
}

package task

import (
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TaskApi struct {
	controller *TaskController
	config     *config.Config
}

func NewTaskApi(controller *TaskController, config *config.Config) *TaskApi {
	return &TaskApi{
		controller: controller,
		config:     config,
	}
}

func (h *TaskApi) Setup(app *fiber.App) {
	app.Get("/api/cases/:id/tasks", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.ListByCase)

	tasks := app.Group("/api/tasks", middleware.AuthMiddleware(h.config.SkipAuth))
	tasks.Put("/:id/status", h.controller.UpdateStatus)
}

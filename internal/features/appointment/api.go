package appointment

import (
	"go-legal/internal/config"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AppointmentApi struct {
	controller *AppointmentController
	config     *config.Config
}

func NewAppointmentApi(controller *AppointmentController, config *config.Config) *AppointmentApi {
	return &AppointmentApi{
		controller: controller,
		config:     config,
	}
}

func (h *AppointmentApi) Setup(app *fiber.App) {
	app.Get("/api/cases/:id/appointments", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.ListByCase)
}

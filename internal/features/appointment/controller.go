package appointment

import (
	"github.com/gofiber/fiber/v2"
)

type AppointmentController struct {
	Service AppointmentService
}

func NewAppointmentController(service AppointmentService) *AppointmentController {
	return &AppointmentController{Service: service}
}

// ListByCase godoc
// @Summary List appointments of a case
// @Tags appointments
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {array} Appointment
// @Security BearerAuth
// @Router /api/cases/{id}/appointments [get]
func (ctrl *AppointmentController) ListByCase(c *fiber.Ctx) error {
	list, err := ctrl.Service.ListByCase(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

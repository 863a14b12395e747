package task

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type TaskController struct {
	Service TaskService
}

func NewTaskController(service TaskService) *TaskController {
	return &TaskController{Service: service}
}

// ListByCase godoc
// @Summary List tasks of a case
// @Tags tasks
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {array} Task
// @Security BearerAuth
// @Router /api/cases/{id}/tasks [get]
func (ctrl *TaskController) ListByCase(c *fiber.Ctx) error {
	tasks, err := ctrl.Service.ListByCase(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tasks)
}

// UpdateStatus godoc
// @Summary Update a task status
// @Tags tasks
// @Accept json
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Task not found"
// @Security BearerAuth
// @Router /api/tasks/{id}/status [put]
func (ctrl *TaskController) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status Status `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := ctrl.Service.UpdateStatus(c.UserContext(), c.Params("id"), body.Status); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Task updated successfully"})
}

package lifecycle

import (
	"errors"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/cases"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LifecycleController struct {
	Service     LifecycleService
	CaseService cases.CaseService
}

func NewLifecycleController(service LifecycleService, caseService cases.CaseService) *LifecycleController {
	return &LifecycleController{Service: service, CaseService: caseService}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, cases.ErrCaseNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConcurrentModification):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidStatusTransition):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// GetProgress godoc
// @Summary Get case progress
// @Description Progress percentage, upcoming and overdue tasks and estimated completion
// @Tags lifecycle
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} CaseProgress
// @Failure 404 {object} map[string]string "Case not found"
// @Security BearerAuth
// @Router /api/cases/{id}/progress [get]
func (ctrl *LifecycleController) GetProgress(c *fiber.Ctx) error {
	progress, err := ctrl.Service.GetCaseProgress(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(progress)
}

// GetEvents godoc
// @Summary List lifecycle events of a case
// @Tags lifecycle
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {array} LifecycleEvent
// @Failure 404 {object} map[string]string "Case not found"
// @Security BearerAuth
// @Router /api/cases/{id}/events [get]
func (ctrl *LifecycleController) GetEvents(c *fiber.Ctx) error {
	events, err := ctrl.Service.GetLifecycleEvents(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(events)
}

type updateStatusRequest struct {
	Status common_models.CaseStatus `json:"status"`
	Reason string                   `json:"reason"`
}

// UpdateStatus godoc
// @Summary Change a case status
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body updateStatusRequest true "Status change"
// @Success 200 {object} LifecycleEvent
// @Failure 409 {object} map[string]string "Case state changed, retry"
// @Failure 422 {object} map[string]string "Invalid status transition"
// @Security BearerAuth
// @Router /api/cases/{id}/status [put]
func (ctrl *LifecycleController) UpdateStatus(c *fiber.Ctx) error {
	var body updateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(c)
	event, err := ctrl.Service.UpdateCaseStatus(c.UserContext(), c.Params("id"), body.Status, claims.UserID, body.Reason)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(event)
}

type validateRequest struct {
	TargetPhase common_models.Phase    `json:"target_phase"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// ValidateTransition godoc
// @Summary Dry-run a phase transition
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body validateRequest true "Target phase and metadata"
// @Success 200 {object} workflow.ValidationResult
// @Security BearerAuth
// @Router /api/cases/{id}/validate [post]
func (ctrl *LifecycleController) ValidateTransition(c *fiber.Ctx) error {
	var body validateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	found, err := ctrl.CaseService.GetCase(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ctrl.Service.Validate(found, body.TargetPhase, middleware.Claims(c).Role, body.Metadata))
}

package automation

import (
	"errors"

	"go-legal/internal/middleware"
	"go-legal/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AutomationController struct {
	Service AutomationService
}

func NewAutomationController(service AutomationService) *AutomationController {
	return &AutomationController{Service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrRuleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidRule):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// CreateRule godoc
// @Summary Create an automation rule
// @Tags automation
// @Accept json
// @Produce json
// @Param rule body AutomationRule true "Rule"
// @Success 201 {object} AutomationRule
// @Failure 400 {object} map[string]string "Invalid rule"
// @Security BearerAuth
// @Router /api/automation/rules [post]
func (ctrl *AutomationController) CreateRule(c *fiber.Ctx) error {
	var rule AutomationRule
	if err := c.BodyParser(&rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	ctx := utils.ContextWithClaims(c.UserContext(), middleware.Claims(c))
	if err := ctrl.Service.CreateRule(ctx, &rule); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

// GetRule godoc
// @Summary Get an automation rule
// @Tags automation
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} AutomationRule
// @Security BearerAuth
// @Router /api/automation/rules/{id} [get]
func (ctrl *AutomationController) GetRule(c *fiber.Ctx) error {
	rule, err := ctrl.Service.GetRule(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rule)
}

// ListRules godoc
// @Summary List automation rules
// @Tags automation
// @Produce json
// @Success 200 {array} AutomationRule
// @Security BearerAuth
// @Router /api/automation/rules [get]
func (ctrl *AutomationController) ListRules(c *fiber.Ctx) error {
	rules, err := ctrl.Service.ListRules(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rules)
}

// SetActive godoc
// @Summary Enable or disable an automation rule
// @Tags automation
// @Accept json
// @Param id path string true "Rule ID"
// @Security BearerAuth
// @Router /api/automation/rules/{id}/active [put]
func (ctrl *AutomationController) SetActive(c *fiber.Ctx) error {
	var body struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	ctx := utils.ContextWithClaims(c.UserContext(), middleware.Claims(c))
	if err := ctrl.Service.SetActive(ctx, c.Params("id"), body.Active); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Rule updated successfully"})
}

// DeleteRule godoc
// @Summary Delete an automation rule
// @Tags automation
// @Param id path string true "Rule ID"
// @Success 204 {object} nil "No Content"
// @Security BearerAuth
// @Router /api/automation/rules/{id} [delete]
func (ctrl *AutomationController) DeleteRule(c *fiber.Ctx) error {
	ctx := utils.ContextWithClaims(c.UserContext(), middleware.Claims(c))
	if err := ctrl.Service.DeleteRule(ctx, c.Params("id")); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package cases

import (
	"errors"
	"strconv"

	"go-legal/internal/middleware"
	"go-legal/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type CaseController struct {
	Service CaseService
}

func NewCaseController(service CaseService) *CaseController {
	return &CaseController{Service: service}
}

// CreateCase godoc
// @Summary Open a new case
// @Description Creates a case in the intake phase and schedules the intake tasks
// @Tags cases
// @Accept json
// @Produce json
// @Param case body CreateCaseInput true "Case"
// @Success 201 {object} Case
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /api/cases [post]
func (ctrl *CaseController) CreateCase(c *fiber.Ctx) error {
	var input CreateCaseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := utils.ContextWithClaims(c.UserContext(), middleware.Claims(c))
	created, err := ctrl.Service.CreateCase(ctx, input)
	if err != nil {
		if errors.Is(err, ErrInvalidCaseInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetCase godoc
// @Summary Get a case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} Case
// @Failure 404 {object} map[string]string "Case not found"
// @Security BearerAuth
// @Router /api/cases/{id} [get]
func (ctrl *CaseController) GetCase(c *fiber.Ctx) error {
	found, err := ctrl.Service.GetCase(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(found)
}

// ListCases godoc
// @Summary List cases
// @Tags cases
// @Produce json
// @Param phase query string false "Phase"
// @Param case_type query string false "Case type"
// @Param attorney_id query string false "Attorney"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {array} Case
// @Security BearerAuth
// @Router /api/cases [get]
func (ctrl *CaseController) ListCases(c *fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

	filters := map[string]interface{}{
		"phase":       c.Query("phase"),
		"case_type":   c.Query("case_type"),
		"status":      c.Query("status"),
		"attorney_id": c.Query("attorney_id"),
	}

	list, err := ctrl.Service.ListCases(c.UserContext(), filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

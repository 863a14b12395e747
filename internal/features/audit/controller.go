package audit

import (
	"strconv"

	common_models "go-legal/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	Service AuditService
}

func NewAuditController(service AuditService) *AuditController {
	return &AuditController{Service: service}
}

func pageParams(c *fiber.Ctx) (int64, int64) {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	return page, limit
}

// ListLogs godoc
// @Summary List audit logs
// @Tags audit
// @Produce json
// @Param module query string false "Module"
// @Param record_id query string false "Record ID"
// @Param action query string false "Action"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} common_models.AuditLog
// @Security BearerAuth
// @Router /api/audit-logs [get]
func (ctrl *AuditController) ListLogs(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filter := LogFilter{
		Module:   c.Query("module"),
		RecordID: c.Query("record_id"),
		Action:   common_models.AuditAction(c.Query("action")),
	}

	logs, err := ctrl.Service.ListLogs(c.UserContext(), filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(logs)
}

// CaseTrail godoc
// @Summary Audit trail of a case
// @Tags audit
// @Produce json
// @Param id path string true "Case ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} common_models.AuditLog
// @Security BearerAuth
// @Router /api/cases/{id}/audit [get]
func (ctrl *AuditController) CaseTrail(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	logs, err := ctrl.Service.CaseTrail(c.UserContext(), c.Params("id"), page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(logs)
}

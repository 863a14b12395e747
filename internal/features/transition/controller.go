package transition

import (
	"errors"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/notification"
	"go-legal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TransitionController struct {
	Service TransitionService
}

func NewTransitionController(service TransitionService) *TransitionController {
	return &TransitionController{Service: service}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrCaseNotFound),
		errors.Is(err, ErrApprovalNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConcurrentModification),
		errors.Is(err, ErrApprovalAlreadyDecided):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotAuthorizedApprover):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidStatusTransition):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

type transitionBody struct {
	TargetPhase  common_models.Phase      `json:"target_phase"`
	TargetStatus common_models.CaseStatus `json:"target_status"`
	Reason       string                   `json:"reason"`
	Metadata     map[string]interface{}   `json:"metadata"`
}

type decisionBody struct {
	Reason string `json:"reason"`
}

// RequestTransition godoc
// @Summary Request a phase transition
// @Description Executes the transition, or parks it for approval when the policy requires one
// @Tags transitions
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body transitionBody true "Transition request"
// @Success 200 {object} TransitionResult
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 409 {object} map[string]string "Case state changed, retry"
// @Failure 422 {object} TransitionResult "Validation failed"
// @Security BearerAuth
// @Router /api/cases/{id}/transitions [post]
func (ctrl *TransitionController) RequestTransition(c *fiber.Ctx) error {
	var body transitionBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(c)
	result, err := ctrl.Service.RequestTransition(c.UserContext(), TransitionRequest{
		CaseID:       c.Params("id"),
		TargetPhase:  body.TargetPhase,
		TargetStatus: body.TargetStatus,
		ActorID:      claims.UserID,
		ActorRole:    claims.Role,
		Reason:       body.Reason,
		Metadata:     body.Metadata,
	})
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return respond(c, result)
}

// GetHistory godoc
// @Summary List executed transitions of a case
// @Tags transitions
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {array} TransitionHistory
// @Failure 404 {object} map[string]string "Case not found"
// @Security BearerAuth
// @Router /api/cases/{id}/transitions [get]
func (ctrl *TransitionController) GetHistory(c *fiber.Ctx) error {
	history, err := ctrl.Service.GetTransitionHistory(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(history)
}

// GetAvailable godoc
// @Summary List phases the caller may move the case to
// @Tags transitions
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {array} string
// @Security BearerAuth
// @Router /api/cases/{id}/transitions/available [get]
func (ctrl *TransitionController) GetAvailable(c *fiber.Ctx) error {
	phases, err := ctrl.Service.GetAvailableTransitions(c.UserContext(), c.Params("id"), middleware.Claims(c).Role)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"phases": phases})
}

// GetPendingApprovals godoc
// @Summary List pending approvals
// @Description Approvers see every pending approval, other users only their own requests
// @Tags approvals
// @Produce json
// @Success 200 {array} TransitionApproval
// @Security BearerAuth
// @Router /api/approvals/pending [get]
func (ctrl *TransitionController) GetPendingApprovals(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	approvals, err := ctrl.Service.GetPendingApprovals(c.UserContext(), claims.UserID, claims.Role)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(approvals)
}

// Approve godoc
// @Summary Approve a pending transition and execute it
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param body body decisionBody false "Decision reason"
// @Success 200 {object} TransitionResult
// @Failure 403 {object} map[string]string "Not an approver"
// @Failure 404 {object} map[string]string "Approval not found"
// @Failure 409 {object} map[string]string "Already decided"
// @Security BearerAuth
// @Router /api/approvals/{id}/approve [post]
func (ctrl *TransitionController) Approve(c *fiber.Ctx) error {
	var body decisionBody
	_ = c.BodyParser(&body)

	claims := middleware.Claims(c)
	result, err := ctrl.Service.ApproveTransition(c.UserContext(), c.Params("id"), claims.UserID, claims.Role, body.Reason)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return respond(c, result)
}

// Reject godoc
// @Summary Reject a pending transition
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Approval ID"
// @Param body body decisionBody true "Rejection reason"
// @Success 200 {object} TransitionResult
// @Failure 403 {object} map[string]string "Not an approver"
// @Failure 409 {object} map[string]string "Already decided"
// @Security BearerAuth
// @Router /api/approvals/{id}/reject [post]
func (ctrl *TransitionController) Reject(c *fiber.Ctx) error {
	var body decisionBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(c)
	result, err := ctrl.Service.RejectTransition(c.UserContext(), c.Params("id"), claims.UserID, claims.Role, body.Reason)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// GetNotifications godoc
// @Summary List the caller's transition notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} notification.TransitionNotification
// @Security BearerAuth
// @Router /api/notifications [get]
func (ctrl *TransitionController) GetNotifications(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	list, err := ctrl.Service.GetNotifications(c.UserContext(), claims.UserID, claims.Role)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string "Notification not found"
// @Security BearerAuth
// @Router /api/notifications/{id}/read [put]
func (ctrl *TransitionController) MarkAsRead(c *fiber.Ctx) error {
	if err := ctrl.Service.MarkNotificationAsRead(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respond sends a failed validation as 422 and anything else as 200.
func respond(c *fiber.Ctx, result *TransitionResult) error {
	if !result.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

package transition

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "go-legal/internal/common/models"
	"go-legal/internal/features/automation"
	"go-legal/internal/features/cases"
	"go-legal/internal/features/lifecycle"
	"go-legal/internal/features/notification"
	"go-legal/internal/features/sideeffect"
	"go-legal/pkg/keylock"

	"go.uber.org/zap"
)

var (
	ErrCaseNotFound            = cases.ErrCaseNotFound
	ErrConcurrentModification  = lifecycle.ErrConcurrentModification
	ErrInvalidStatusTransition = lifecycle.ErrInvalidStatusTransition
	ErrApprovalNotFound        = errors.New("approval not found")
	ErrApprovalAlreadyDecided  = errors.New("approval already decided")
	ErrNotAuthorizedApprover   = errors.New("role may not decide approvals")
	ErrInvalidRequest          = errors.New("invalid transition request")
)

// UserFinder resolves the users holding approver roles.
type UserFinder interface {
	FindByRoles(ctx context.Context, roles []common_models.Role) ([]common_models.User, error)
}

// EffectSource yields extra side effects for an executed transition.
type EffectSource interface {
	Effects(ctx context.Context, tc automation.TransitionContext, now time.Time) []sideeffect.Effect
}

// HistoryMirror receives a copy of every history row after it is stored.
type HistoryMirror interface {
	MirrorTransition(ctx context.Context, h TransitionHistory) error
}

type AuditLogger interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error
}

type TransitionService interface {
	RequestTransition(ctx context.Context, req TransitionRequest) (*TransitionResult, error)
	ApproveTransition(ctx context.Context, approvalID, approverID string, role common_models.Role, reason string) (*TransitionResult, error)
	RejectTransition(ctx context.Context, approvalID, approverID string, role common_models.Role, reason string) (*TransitionResult, error)
	GetTransitionHistory(ctx context.Context, caseID string) ([]TransitionHistory, error)
	GetAvailableTransitions(ctx context.Context, caseID string, role common_models.Role) ([]common_models.Phase, error)
	GetPendingApprovals(ctx context.Context, actorID string, role common_models.Role) ([]TransitionApproval, error)
	GetNotifications(ctx context.Context, actorID string, role common_models.Role) ([]notification.TransitionNotification, error)
	MarkNotificationAsRead(ctx context.Context, id string) error
}

type TransitionServiceImpl struct {
	Cases         cases.CaseRepository
	Lifecycle     lifecycle.LifecycleService
	History       HistoryRepository
	Approvals     ApprovalRepository
	Notifications notification.NotificationService
	Users         UserFinder
	Dispatcher    sideeffect.Dispatcher
	Automation    EffectSource
	AuditService  AuditLogger
	Mirror        HistoryMirror
	Policy        ApprovalPolicy
	Locks         *keylock.Set
	Logger        *zap.Logger
	Now           func() time.Time
}

func NewTransitionService(
	caseRepo cases.CaseRepository,
	lifecycleService lifecycle.LifecycleService,
	history HistoryRepository,
	approvals ApprovalRepository,
	notifications notification.NotificationService,
	users UserFinder,
	dispatcher sideeffect.Dispatcher,
	engine EffectSource,
	auditService AuditLogger,
	mirror HistoryMirror,
	locks *keylock.Set,
	logger *zap.Logger,
) TransitionService {
	return &TransitionServiceImpl{
		Cases:         caseRepo,
		Lifecycle:     lifecycleService,
		History:       history,
		Approvals:     approvals,
		Notifications: notifications,
		Users:         users,
		Dispatcher:    dispatcher,
		Automation:    engine,
		AuditService:  auditService,
		Mirror:        mirror,
		Policy:        DefaultApprovalPolicy(),
		Locks:         locks,
		Logger:        logger,
		Now:           time.Now,
	}
}

// RequestTransition validates req and then either parks it for approval or
// executes it. The whole sequence holds the case lock; a second request for
// the same case fails fast instead of queueing.
func (s *TransitionServiceImpl) RequestTransition(ctx context.Context, req TransitionRequest) (*TransitionResult, error) {
	if req.CaseID == "" || req.TargetPhase == "" {
		return nil, fmt.Errorf("%w: case_id and target_phase are required", ErrInvalidRequest)
	}

	unlock, ok := s.Locks.TryLock(req.CaseID)
	if !ok {
		return nil, ErrConcurrentModification
	}
	defer unlock()

	c, err := s.loadCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}

	if failed := s.preflight(c, req); failed != nil {
		return failed, nil
	}

	if s.Policy.RequiresApproval(c.CaseType, req.TargetPhase, req.ActorRole) {
		return s.park(ctx, c, req)
	}
	return s.execute(ctx, c, req, "")
}

// preflight runs every check execution would run, so an approval is never
// parked for a move that cannot happen. It returns nil when req may proceed.
func (s *TransitionServiceImpl) preflight(c *cases.Case, req TransitionRequest) *TransitionResult {
	validation := s.Lifecycle.Validate(c, req.TargetPhase, req.ActorRole, req.Metadata)
	if validation.IsValid {
		if from, change := statusChange(c.Status, req); change {
			validation.Merge(s.Lifecycle.ValidateStatusChange(req.TargetPhase, from, req.TargetStatus))
		}
	}
	if validation.IsValid {
		return nil
	}
	return &TransitionResult{
		Success:         false,
		Message:         "Transition validation failed",
		Errors:          validation.Errors,
		Warnings:        validation.Warnings,
		Recommendations: validation.Recommendations,
	}
}

// statusChange reports whether req asks for a status other than the one the
// case will hold once the phase move is done. Entering closure closes the case.
func statusChange(current common_models.CaseStatus, req TransitionRequest) (common_models.CaseStatus, bool) {
	if req.TargetStatus == "" {
		return current, false
	}
	from := current
	if req.TargetPhase == common_models.PhaseClosure {
		from = common_models.CaseStatusClosed
	}
	return from, req.TargetStatus != from
}

func (s *TransitionServiceImpl) park(ctx context.Context, c *cases.Case, req TransitionRequest) (*TransitionResult, error) {
	approval := &TransitionApproval{
		CaseID:          req.CaseID,
		TargetPhase:     req.TargetPhase,
		TargetStatus:    req.TargetStatus,
		RequestedBy:     req.ActorID,
		RequestedByRole: req.ActorRole,
		Request:         req,
		Status:          common_models.ApprovalStatusPending,
		CreatedAt:       s.Now(),
	}
	if err := s.Approvals.Create(ctx, approval); err != nil {
		return nil, fmt.Errorf("create approval: %w", err)
	}
	approvalID := approval.ID.Hex()

	s.notifyApprovers(ctx, c, approval)

	changes := map[string]common_models.Change{
		"approval": {Old: nil, New: string(common_models.ApprovalStatusPending)},
		"phase":    {Old: c.Phase, New: req.TargetPhase},
	}
	s.recordAudit(ctx, common_models.AuditActionApproval, "transition_approvals", approvalID, changes)

	return &TransitionResult{
		Success:          true,
		Message:          fmt.Sprintf("Transition to %s submitted for approval", req.TargetPhase.Label()),
		ApprovalID:       approvalID,
		RequiresApproval: true,
	}, nil
}

// notifyApprovers addresses every active approver. When none can be found
// the notification goes to the approver roles instead.
func (s *TransitionServiceImpl) notifyApprovers(ctx context.Context, c *cases.Case, approval *TransitionApproval) {
	base := notification.NewNotification{
		CaseID:     approval.CaseID,
		Type:       notification.NotificationTypeApprovalRequested,
		Title:      fmt.Sprintf("Approval requested for case %s", c.CaseNumber),
		Message:    fmt.Sprintf("%s requests moving %q to %s", approval.RequestedBy, c.Title, approval.TargetPhase.Label()),
		ApprovalID: approval.ID.Hex(),
	}

	var effects []sideeffect.Effect
	approvers, err := s.Users.FindByRoles(ctx, s.Policy.Approvers)
	if err != nil {
		s.Logger.Warn("Failed to resolve approvers, notifying roles",
			zap.String("case_id", approval.CaseID),
			zap.Error(err),
		)
	}
	for _, u := range approvers {
		n := base
		n.RecipientID = u.ID.Hex()
		n.RecipientRole = u.Role
		effects = append(effects, sideeffect.NotificationEffect("approval_gate", n))
	}
	if len(effects) == 0 {
		for _, role := range s.Policy.Approvers {
			n := base
			n.RecipientRole = role
			effects = append(effects, sideeffect.NotificationEffect("approval_gate", n))
		}
	}
	_ = s.Dispatcher.Dispatch(ctx, effects...)
}

// execute runs req against the case. Only the phase write can fail the
// transition; the steps after it are logged and continue.
func (s *TransitionServiceImpl) execute(ctx context.Context, c *cases.Case, req TransitionRequest, approvalID string) (*TransitionResult, error) {
	outcome, err := s.Lifecycle.TransitionToPhase(ctx, req.CaseID, req.TargetPhase, req.ActorID, req.ActorRole, req.Metadata)
	if err != nil {
		return nil, err
	}
	result := &TransitionResult{
		ApprovalID:      approvalID,
		Warnings:        outcome.Warnings,
		Recommendations: outcome.Recommendations,
	}
	if !outcome.Success {
		result.Message = "Transition validation failed"
		result.Errors = outcome.Errors
		return result, nil
	}

	updated := outcome.Case
	events := outcome.Events
	if req.TargetStatus != "" && req.TargetStatus != updated.Status {
		event, err := s.Lifecycle.UpdateCaseStatus(ctx, req.CaseID, req.TargetStatus, req.ActorID, req.Reason)
		if err != nil {
			s.Logger.Warn("Phase changed but status update failed",
				zap.String("case_id", req.CaseID),
				zap.String("status", string(req.TargetStatus)),
				zap.Error(err),
			)
			result.Warnings = append(result.Warnings, fmt.Sprintf("Status was not changed to %s: %v", req.TargetStatus, err))
		} else {
			events = append(events, *event)
			updated.Status = req.TargetStatus
		}
	}

	now := s.Now()
	history := TransitionHistory{
		CaseID:     req.CaseID,
		FromPhase:  outcome.FromPhase,
		ToPhase:    outcome.ToPhase,
		FromStatus: c.Status,
		ToStatus:   updated.Status,
		UserID:     req.ActorID,
		UserRole:   req.ActorRole,
		ApprovalID: approvalID,
		Reason:     req.Reason,
		Metadata:   req.Metadata,
		Timestamp:  now,
	}
	if err := s.History.Append(ctx, &history); err != nil {
		s.Logger.Error("Failed to record transition history",
			zap.String("case_id", req.CaseID),
			zap.Error(err),
		)
	} else {
		result.TransitionID = history.ID.Hex()
		s.mirror(ctx, history)
	}

	effects := s.participantNotifications(updated, req, outcome.FromPhase)
	effects = append(effects, postTransitionEffects(updated, now)...)
	if s.Automation != nil {
		effects = append(effects, s.Automation.Effects(ctx, automation.TransitionContext{
			CaseID:     req.CaseID,
			CaseNumber: updated.CaseNumber,
			Title:      updated.Title,
			CaseType:   updated.CaseType,
			Status:     updated.Status,
			AttorneyID: updated.AttorneyID,
			ClientID:   updated.ClientID,
			FromPhase:  outcome.FromPhase,
			ToPhase:    outcome.ToPhase,
			Metadata:   updated.Metadata,
		}, now)...)
	}
	_ = s.Dispatcher.Dispatch(ctx, effects...)

	changes := map[string]common_models.Change{
		"phase": {Old: outcome.FromPhase, New: outcome.ToPhase},
	}
	if c.Status != updated.Status {
		changes["status"] = common_models.Change{Old: c.Status, New: updated.Status}
	}
	s.recordAudit(ctx, common_models.AuditActionTransition, "cases", req.CaseID, changes)

	result.Success = true
	result.Message = fmt.Sprintf("Case moved to %s", outcome.ToPhase.Label())
	result.Events = events
	return result, nil
}

// participantNotifications tells the attorney and client about the move,
// skipping whoever made it.
func (s *TransitionServiceImpl) participantNotifications(c *cases.Case, req TransitionRequest, from common_models.Phase) []sideeffect.Effect {
	recipients := []struct {
		id   string
		role common_models.Role
	}{
		{c.AttorneyID, common_models.RoleAttorney},
		{c.ClientID, common_models.RoleClient},
	}

	var effects []sideeffect.Effect
	for _, r := range recipients {
		if r.id == "" || r.id == req.ActorID {
			continue
		}
		effects = append(effects, sideeffect.NotificationEffect("transition", notification.NewNotification{
			CaseID:        req.CaseID,
			RecipientID:   r.id,
			RecipientRole: r.role,
			Type:          notification.NotificationTypePhaseChanged,
			Title:         fmt.Sprintf("Case %s moved to %s", c.CaseNumber, req.TargetPhase.Label()),
			Message:       fmt.Sprintf("%q moved from %s to %s", c.Title, from.Label(), req.TargetPhase.Label()),
		}))
	}
	return effects
}

func (s *TransitionServiceImpl) mirror(ctx context.Context, h TransitionHistory) {
	if s.Mirror == nil {
		return
	}
	if err := s.Mirror.MirrorTransition(ctx, h); err != nil {
		s.Logger.Warn("Failed to mirror transition history",
			zap.String("case_id", h.CaseID),
			zap.String("transition_id", h.ID.Hex()),
			zap.Error(err),
		)
	}
}

// ApproveTransition records the approval and replays the stored request.
// The decision stands even if the replay no longer validates.
func (s *TransitionServiceImpl) ApproveTransition(ctx context.Context, approvalID, approverID string, role common_models.Role, reason string) (*TransitionResult, error) {
	approval, err := s.pendingApproval(ctx, approvalID, role)
	if err != nil {
		return nil, err
	}

	unlock, ok := s.Locks.TryLock(approval.CaseID)
	if !ok {
		return nil, ErrConcurrentModification
	}
	defer unlock()

	decided, err := s.decide(ctx, approvalID, common_models.ApprovalStatusApproved, approverID, role, reason)
	if err != nil {
		return nil, err
	}

	c, err := s.loadCase(ctx, decided.CaseID)
	if err != nil {
		s.approvedNotApplied(ctx, decided, err)
		return nil, err
	}
	result, err := s.execute(ctx, c, decided.Request, approvalID)
	if err != nil {
		s.approvedNotApplied(ctx, decided, err)
		return nil, err
	}

	message := fmt.Sprintf("Your request to move case %s to %s was approved", c.CaseNumber, decided.TargetPhase.Label())
	if !result.Success {
		message += " but could not be applied: the case no longer meets the transition rules"
	}
	s.notifyRequester(ctx, decided, notification.NotificationTypeApprovalApproved, "Transition approved", message)
	return result, nil
}

// approvedNotApplied reports an approval whose stored request failed to run.
// The decision is already committed, so the requester has to resubmit.
func (s *TransitionServiceImpl) approvedNotApplied(ctx context.Context, a *TransitionApproval, cause error) {
	s.Logger.Error("Approved transition could not be applied",
		zap.String("case_id", a.CaseID),
		zap.String("approval_id", a.ID.Hex()),
		zap.String("target_phase", string(a.TargetPhase)),
		zap.Error(cause),
	)
	message := fmt.Sprintf("Your request to move the case to %s was approved but could not be applied, please submit it again", a.TargetPhase.Label())
	s.notifyRequester(ctx, a, notification.NotificationTypeApprovalApproved, "Transition approved", message)
}

func (s *TransitionServiceImpl) RejectTransition(ctx context.Context, approvalID, approverID string, role common_models.Role, reason string) (*TransitionResult, error) {
	if _, err := s.pendingApproval(ctx, approvalID, role); err != nil {
		return nil, err
	}

	decided, err := s.decide(ctx, approvalID, common_models.ApprovalStatusRejected, approverID, role, reason)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your request to move the case to %s was rejected", decided.TargetPhase.Label())
	if reason != "" {
		message += ": " + reason
	}
	s.notifyRequester(ctx, decided, notification.NotificationTypeApprovalRejected, "Transition rejected", message)

	return &TransitionResult{
		Success:    true,
		Message:    "Transition request rejected",
		ApprovalID: approvalID,
	}, nil
}

func (s *TransitionServiceImpl) pendingApproval(ctx context.Context, approvalID string, role common_models.Role) (*TransitionApproval, error) {
	if !s.Policy.IsApprover(role) {
		return nil, ErrNotAuthorizedApprover
	}
	approval, err := s.Approvals.GetByID(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("load approval: %w", err)
	}
	if approval == nil {
		return nil, ErrApprovalNotFound
	}
	if approval.Status != common_models.ApprovalStatusPending {
		return nil, ErrApprovalAlreadyDecided
	}
	return approval, nil
}

func (s *TransitionServiceImpl) decide(ctx context.Context, approvalID string, status common_models.ApprovalStatus, actorID string, role common_models.Role, reason string) (*TransitionApproval, error) {
	decided, err := s.Approvals.Decide(ctx, approvalID, Decision{
		Status:    status,
		ActorID:   actorID,
		Role:      role,
		Reason:    reason,
		DecidedAt: s.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrNotPending) {
			return nil, ErrApprovalAlreadyDecided
		}
		return nil, fmt.Errorf("decide approval: %w", err)
	}

	changes := map[string]common_models.Change{
		"approval": {Old: string(common_models.ApprovalStatusPending), New: string(status)},
	}
	if reason != "" {
		changes["decision_reason"] = common_models.Change{Old: nil, New: reason}
	}
	s.recordAudit(ctx, common_models.AuditActionApproval, "transition_approvals", approvalID, changes)
	return decided, nil
}

// recordAudit writes an audit entry after the change is committed; a failed
// write is logged and never undoes the change.
func (s *TransitionServiceImpl) recordAudit(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) {
	if s.AuditService == nil {
		return
	}
	if err := s.AuditService.LogChange(ctx, action, module, recordID, changes); err != nil {
		s.Logger.Warn("Failed to write audit log",
			zap.String("action", string(action)),
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.Error(err),
		)
	}
}

func (s *TransitionServiceImpl) notifyRequester(ctx context.Context, a *TransitionApproval, kind notification.NotificationType, title, message string) {
	_ = s.Dispatcher.Dispatch(ctx, sideeffect.NotificationEffect("approval_decision", notification.NewNotification{
		CaseID:        a.CaseID,
		RecipientID:   a.RequestedBy,
		RecipientRole: a.RequestedByRole,
		Type:          kind,
		Title:         title,
		Message:       message,
		ApprovalID:    a.ID.Hex(),
	}))
}

func (s *TransitionServiceImpl) GetTransitionHistory(ctx context.Context, caseID string) ([]TransitionHistory, error) {
	if _, err := s.loadCase(ctx, caseID); err != nil {
		return nil, err
	}
	history, err := s.History.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []TransitionHistory{}
	}
	return history, nil
}

func (s *TransitionServiceImpl) GetAvailableTransitions(ctx context.Context, caseID string, role common_models.Role) ([]common_models.Phase, error) {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return s.Lifecycle.AvailableTransitions(c, role), nil
}

// GetPendingApprovals returns every pending approval to approvers and only
// their own requests to everyone else.
func (s *TransitionServiceImpl) GetPendingApprovals(ctx context.Context, actorID string, role common_models.Role) ([]TransitionApproval, error) {
	requestedBy := actorID
	if s.Policy.IsApprover(role) {
		requestedBy = ""
	}
	approvals, err := s.Approvals.ListPending(ctx, requestedBy)
	if err != nil {
		return nil, err
	}
	if approvals == nil {
		approvals = []TransitionApproval{}
	}
	return approvals, nil
}

func (s *TransitionServiceImpl) GetNotifications(ctx context.Context, actorID string, role common_models.Role) ([]notification.TransitionNotification, error) {
	return s.Notifications.ListForRecipient(ctx, actorID, role)
}

func (s *TransitionServiceImpl) MarkNotificationAsRead(ctx context.Context, id string) error {
	return s.Notifications.MarkAsRead(ctx, id)
}

func (s *TransitionServiceImpl) loadCase(ctx context.Context, caseID string) (*cases.Case, error) {
	c, err := s.Cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("load case: %w", err)
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return c, nil
}

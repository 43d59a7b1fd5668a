package approval

import (
	"context"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/audit"
	"prestova-one/internal/features/request"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DecisionEvent is pushed to websocket subscribers after every decision.
type DecisionEvent struct {
	RequestID     string             `json:"request_id"`
	Type          request.Type       `json:"type"`
	RequesterID   string             `json:"requester_id"`
	Status        request.Status     `json:"status"`
	Action        request.StepStatus `json:"action"`
	DecidedByName string             `json:"decided_by_name"`
	Comment       string             `json:"comment,omitempty"`
	DecidedAt     time.Time          `json:"decided_at"`
}

// Notifier pushes decision events to connected clients. Implemented by the
// notification hub; declared here so the features stay decoupled.
type Notifier interface {
	PublishDecision(event DecisionEvent)
}

// DecisionMailer emails the requester (and, on terminal decisions, the
// broadcast list). Implemented by the broadcast feature.
type DecisionMailer interface {
	NotifyDecision(ctx context.Context, req *request.Request, actor common_models.Actor, action request.StepStatus, comment string)
}

type ApprovalService interface {
	ListActionable(ctx context.Context, actor common_models.Actor) ([]request.Request, error)
	Decide(ctx context.Context, requestID string, actor common_models.Actor, action request.StepStatus, comment string) (*request.Request, error)
}

type ApprovalServiceImpl struct {
	RequestRepo  request.RequestRepository
	AuditService audit.AuditService
	Notifier     Notifier
	Mailer       DecisionMailer
	Logger       *zap.Logger
}

func NewApprovalService(
	requestRepo request.RequestRepository,
	auditService audit.AuditService,
	notifier Notifier,
	mailer DecisionMailer,
	logger *zap.Logger,
) ApprovalService {
	return &ApprovalServiceImpl{
		RequestRepo:  requestRepo,
		AuditService: auditService,
		Notifier:     notifier,
		Mailer:       mailer,
		Logger:       logger,
	}
}

// actionableStatuses maps a role onto the overall statuses it can decide.
func actionableStatuses(role common_models.Role) []request.Status {
	r, ok := transitionTable[role]
	if !ok {
		return nil
	}
	return r.from
}

func (s *ApprovalServiceImpl) ListActionable(ctx context.Context, actor common_models.Actor) ([]request.Request, error) {
	statuses := actionableStatuses(actor.Role)
	if len(statuses) == 0 {
		return []request.Request{}, nil
	}

	filter := request.VisibleFilter(actor)
	filter["status"] = bson.M{"$in": statuses}

	requests, _, err := s.RequestRepo.List(ctx, filter, 200, 0)
	if err != nil {
		return nil, err
	}

	// The store filter is role-shaped; CanAct is still the authority
	actionable := make([]request.Request, 0, len(requests))
	for i := range requests {
		if CanAct(&requests[i], actor) {
			requests[i].ApprovalFlow = ResolveApprovalFlow(&requests[i])
			actionable = append(actionable, requests[i])
		}
	}
	return actionable, nil
}

func (s *ApprovalServiceImpl) Decide(ctx context.Context, requestID string, actor common_models.Actor, action request.StepStatus, comment string) (*request.Request, error) {
	req, err := s.RequestRepo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}

	prevStatus := req.Status
	updated, err := ApplyDecision(*req, actor, action, comment, time.Now())
	if err != nil {
		return nil, err
	}

	// Compare-and-set on the prior status: a racing approver loses with
	// ErrConflict and nothing is partially written
	if err := s.RequestRepo.UpdateDecision(ctx, requestID, prevStatus, &updated); err != nil {
		return nil, err
	}

	s.Logger.Info("decision applied",
		zap.String("requestId", requestID),
		zap.String("action", string(action)),
		zap.String("from", string(prevStatus)),
		zap.String("to", string(updated.Status)),
		zap.String("actorId", actor.ID),
		zap.String("departmentId", updated.DepartmentID))

	changes := map[string]common_models.Change{
		"status": {Old: string(prevStatus), New: string(updated.Status)},
	}
	if comment != "" {
		changes["comment"] = common_models.Change{Old: nil, New: comment}
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionApproval, "requests", requestID, actor, changes)

	if s.Notifier != nil {
		s.Notifier.PublishDecision(DecisionEvent{
			RequestID:     updated.ID,
			Type:          updated.Type,
			RequesterID:   updated.RequesterID,
			Status:        updated.Status,
			Action:        action,
			DecidedByName: actor.Name,
			Comment:       comment,
			DecidedAt:     updated.UpdatedAt,
		})
	}
	if s.Mailer != nil {
		s.Mailer.NotifyDecision(ctx, &updated, actor, action, comment)
	}

	return &updated, nil
}

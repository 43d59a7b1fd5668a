package request

import (
	"context"
	"fmt"
	"strconv"
	"time"

	common_models "prestova-one/internal/common/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FlowResolver fills in the approval flow for display. Wired to the
// approval engine in main; kept as a function type to avoid a package cycle.
type FlowResolver func(req *Request) []ApprovalStep

type SubmitInput struct {
	Type         Type           `json:"type" validate:"required"`
	Draft        bool           `json:"draft"`
	DepartmentID string         `json:"department_id"`
	ApprovalFlow []ApprovalStep `json:"approval_flow"`
	Detail       Detail         `json:"detail"`
}

type ListOptions struct {
	Status Status
	Type   Type
	Limit  int64
	Offset int64
}

type RequestService interface {
	Submit(ctx context.Context, actor common_models.Actor, input SubmitInput) (*Request, error)
	Get(ctx context.Context, actor common_models.Actor, id string) (*Request, error)
	ListVisible(ctx context.Context, actor common_models.Actor, opts ListOptions) ([]Request, int64, error)
}

type RequestServiceImpl struct {
	Repo        RequestRepository
	ResolveFlow FlowResolver
	Validator   *validator.Validate
	Logger      *zap.Logger
}

func NewRequestService(repo RequestRepository, resolveFlow FlowResolver, logger *zap.Logger) RequestService {
	return &RequestServiceImpl{
		Repo:        repo,
		ResolveFlow: resolveFlow,
		Validator:   validator.New(),
		Logger:      logger,
	}
}

func (s *RequestServiceImpl) Submit(ctx context.Context, actor common_models.Actor, input SubmitInput) (*Request, error) {
	if err := s.Validator.Struct(input); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("unknown request type: %s", input.Type)
	}

	departmentID := input.DepartmentID
	if departmentID == "" {
		departmentID = actor.DepartmentID
	}

	status := StatusPending
	if input.Draft {
		status = StatusDraft
	}

	now := time.Now()
	req := &Request{
		Type:          input.Type,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		DepartmentID:  departmentID,
		Status:        status,
		ApprovalFlow:  input.ApprovalFlow,
		Detail:        input.Detail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// IDs are millisecond timestamps; bump and retry on the rare collision.
	id := now.UnixMilli()
	for attempt := 0; attempt < 10; attempt++ {
		req.ID = strconv.FormatInt(id, 10)
		err := s.Repo.Create(ctx, req)
		if err == nil {
			s.Logger.Info("request submitted",
				zap.String("id", req.ID),
				zap.String("type", string(req.Type)),
				zap.String("actorId", actor.ID),
				zap.String("departmentId", departmentID))
			return req, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		id++
	}
	return nil, fmt.Errorf("could not allocate a unique request id")
}

func (s *RequestServiceImpl) Get(ctx context.Context, actor common_models.Actor, id string) (*Request, error) {
	req, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Requesters always see their own submissions regardless of role filters
	if req.RequesterID != actor.ID && !VisibleTo(req, actor) {
		return nil, ErrNotFound
	}

	// Resolve on every read so legacy requests without a stored flow still
	// render a chain
	req.ApprovalFlow = s.ResolveFlow(req)
	return req, nil
}

func (s *RequestServiceImpl) ListVisible(ctx context.Context, actor common_models.Actor, opts ListOptions) ([]Request, int64, error) {
	filter := VisibleFilter(actor)
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Type != "" {
		filter["type"] = opts.Type
	}

	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	requests, total, err := s.Repo.List(ctx, filter, limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}

	for i := range requests {
		requests[i].ApprovalFlow = s.ResolveFlow(&requests[i])
	}
	return requests, total, nil
}

package approval

import (
	"errors"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/request"
)

var (
	// ErrNotAuthorized means the acting user may not decide the current step.
	ErrNotAuthorized = errors.New("not authorized to act on this request")
	// ErrNoPendingStep means the request has nothing left to approve.
	ErrNoPendingStep = errors.New("nothing to approve")
)

// rule describes what a role may act on and where approval moves the
// request. The whole workflow is this table; there are no per-role code
// paths.
type rule struct {
	from          []request.Status
	approvedNext  request.Status
	needsDeptSame bool
}

var transitionTable = map[common_models.Role]rule{
	common_models.RoleManager: {
		from:          []request.Status{request.StatusDraft, request.StatusPending},
		approvedNext:  request.StatusManagerApproved,
		needsDeptSame: true,
	},
	common_models.RoleGeneralManager: {
		from:         []request.Status{request.StatusManagerApproved},
		approvedNext: request.StatusGMApproved,
	},
	// finance is interchangeable with hrd at the final step, even though the
	// synthesized flow always labels that step hrd
	common_models.RoleHRD: {
		from:         []request.Status{request.StatusGMApproved},
		approvedNext: request.StatusApproved,
	},
	common_models.RoleFinance: {
		from:         []request.Status{request.StatusGMApproved},
		approvedNext: request.StatusApproved,
	},
}

// ResolveApprovalFlow returns the request's approval chain. A stored
// non-empty flow is returned as-is (copied, never regenerated, even if it
// looks wrong); an empty one gets the canonical three-step chain. Called on
// every read and decide so historical requests created before flows existed
// still resolve.
func ResolveApprovalFlow(req *request.Request) []request.ApprovalStep {
	if len(req.ApprovalFlow) > 0 {
		flow := make([]request.ApprovalStep, len(req.ApprovalFlow))
		copy(flow, req.ApprovalFlow)
		return flow
	}

	return []request.ApprovalStep{
		{Role: common_models.RoleManager, DepartmentID: req.DepartmentID, Status: request.StepPending},
		{Role: common_models.RoleGeneralManager, Status: request.StepPending},
		{Role: common_models.RoleHRD, Status: request.StepPending},
	}
}

// CurrentStepIndex returns the index of the first pending step. Only that
// step is ever actionable; later pending steps are inert until earlier ones
// resolve. Falls back to 0 when nothing is pending.
func CurrentStepIndex(flow []request.ApprovalStep) int {
	for i, step := range flow {
		if step.Status == request.StepPending {
			return i
		}
	}
	return 0
}

// CanAct reports whether the actor may decide the request in its current
// state. Admin is a superuser for viewing, not a workflow actor, so it is
// absent from the transition table and gets false here like any other
// unlisted role.
func CanAct(req *request.Request, actor common_models.Actor) bool {
	r, ok := transitionTable[actor.Role]
	if !ok {
		return false
	}
	if r.needsDeptSame && req.DepartmentID != actor.DepartmentID {
		return false
	}
	for _, from := range r.from {
		if req.Status == from {
			return true
		}
	}
	return false
}

// ApplyDecision computes the request's next state after the actor approves
// or rejects. It is pure: the input request is not mutated and no I/O
// happens; the caller persists the returned value. Exactly one step flips
// from pending, and the overall status is recomputed from the transition
// table so it can never diverge from the flow.
func ApplyDecision(req request.Request, actor common_models.Actor, action request.StepStatus, comment string, now time.Time) (request.Request, error) {
	if action != request.StepApproved && action != request.StepRejected {
		return request.Request{}, errors.New("invalid decision action")
	}

	flow := ResolveApprovalFlow(&req)
	idx := CurrentStepIndex(flow)
	if flow[idx].Status != request.StepPending {
		// Fully resolved flow: the request is terminal or malformed, and no
		// actor could decide anything
		return request.Request{}, ErrNoPendingStep
	}

	if !CanAct(&req, actor) {
		return request.Request{}, ErrNotAuthorized
	}

	decidedAt := now
	flow[idx].Status = action
	flow[idx].DecidedAt = &decidedAt
	flow[idx].DecidedByUserID = actor.ID
	flow[idx].DecidedByName = actor.Name
	flow[idx].Comment = comment

	// A rejection at any step short-circuits the whole request; the steps
	// after it stay pending forever and are simply never evaluated again.
	nextStatus := request.StatusRejected
	if action == request.StepApproved {
		nextStatus = transitionTable[actor.Role].approvedNext
	}

	req.ApprovalFlow = flow
	req.Status = nextStatus
	req.UpdatedAt = now
	return req, nil
}

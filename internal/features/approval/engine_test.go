package approval

import (
	"testing"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	staffOps = common_models.Actor{ID: "u-staff", Name: "Ops Staff", Role: common_models.RoleStaff, DepartmentID: "dept-ops"}
	mgrOps   = common_models.Actor{ID: "u-mgr", Name: "Ops Manager", Role: common_models.RoleManager, DepartmentID: "dept-ops"}
	mgrFin   = common_models.Actor{ID: "u-mgr-fin", Name: "Fin Manager", Role: common_models.RoleManager, DepartmentID: "dept-fin"}
	gm       = common_models.Actor{ID: "u-gm", Name: "General Manager", Role: common_models.RoleGeneralManager}
	hrd      = common_models.Actor{ID: "u-hrd", Name: "HRD Officer", Role: common_models.RoleHRD}
	finance  = common_models.Actor{ID: "u-fin", Name: "Finance Officer", Role: common_models.RoleFinance}
	admin    = common_models.Actor{ID: "u-admin", Name: "Admin", Role: common_models.RoleAdmin}
)

func newPendingRequest() request.Request {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return request.Request{
		ID:            "1741597200000",
		Type:          request.TypeLeave,
		RequesterID:   staffOps.ID,
		RequesterName: staffOps.Name,
		DepartmentID:  "dept-ops",
		Status:        request.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestResolveApprovalFlow_SynthesizesDefaultChain(t *testing.T) {
	req := newPendingRequest()

	flow := ResolveApprovalFlow(&req)

	require.Len(t, flow, 3)
	assert.Equal(t, common_models.RoleManager, flow[0].Role)
	assert.Equal(t, "dept-ops", flow[0].DepartmentID)
	assert.Equal(t, common_models.RoleGeneralManager, flow[1].Role)
	assert.Equal(t, common_models.RoleHRD, flow[2].Role)
	for _, step := range flow {
		assert.Equal(t, request.StepPending, step.Status)
	}
}

func TestResolveApprovalFlow_ReturnsStoredFlowUnchanged(t *testing.T) {
	req := newPendingRequest()
	req.ApprovalFlow = []request.ApprovalStep{
		{Role: common_models.RoleGeneralManager, Status: request.StepPending},
	}

	flow := ResolveApprovalFlow(&req)

	require.Len(t, flow, 1)
	assert.Equal(t, common_models.RoleGeneralManager, flow[0].Role)

	// Returned flow is a copy, mutating it must not touch the request
	flow[0].Status = request.StepApproved
	assert.Equal(t, request.StepPending, req.ApprovalFlow[0].Status)
}

func TestCurrentStepIndex(t *testing.T) {
	flow := []request.ApprovalStep{
		{Role: common_models.RoleManager, Status: request.StepApproved},
		{Role: common_models.RoleGeneralManager, Status: request.StepPending},
		{Role: common_models.RoleHRD, Status: request.StepPending},
	}
	assert.Equal(t, 1, CurrentStepIndex(flow))

	flow[1].Status = request.StepApproved
	flow[2].Status = request.StepApproved
	assert.Equal(t, 0, CurrentStepIndex(flow))
}

func TestApplyDecision_FullApprovalChain(t *testing.T) {
	req := newPendingRequest()
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	step1, err := ApplyDecision(req, mgrOps, request.StepApproved, "ok", now)
	require.NoError(t, err)
	assert.Equal(t, request.StatusManagerApproved, step1.Status)
	assert.Equal(t, request.StepApproved, step1.ApprovalFlow[0].Status)
	assert.Equal(t, mgrOps.ID, step1.ApprovalFlow[0].DecidedByUserID)
	assert.Equal(t, mgrOps.Name, step1.ApprovalFlow[0].DecidedByName)
	assert.Equal(t, "ok", step1.ApprovalFlow[0].Comment)
	require.NotNil(t, step1.ApprovalFlow[0].DecidedAt)
	assert.Equal(t, now, *step1.ApprovalFlow[0].DecidedAt)
	assert.Equal(t, now, step1.UpdatedAt)

	assert.Equal(t, 1, CurrentStepIndex(step1.ApprovalFlow))

	step2, err := ApplyDecision(step1, gm, request.StepApproved, "", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, request.StatusGMApproved, step2.Status)
	assert.Equal(t, request.StepApproved, step2.ApprovalFlow[1].Status)
	assert.Equal(t, request.StepPending, step2.ApprovalFlow[2].Status)

	// Later steps keep their role and department untouched
	assert.Equal(t, common_models.RoleGeneralManager, step2.ApprovalFlow[1].Role)
	assert.Equal(t, common_models.RoleHRD, step2.ApprovalFlow[2].Role)
	assert.Empty(t, step2.ApprovalFlow[2].DepartmentID)

	step3, err := ApplyDecision(step2, hrd, request.StepApproved, "", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, step3.Status)
	assert.True(t, step3.Status.Terminal())
	for _, step := range step3.ApprovalFlow {
		assert.Equal(t, request.StepApproved, step.Status)
	}
}

func TestApplyDecision_FinanceActsAtFinalStep(t *testing.T) {
	req := newPendingRequest()
	req.Status = request.StatusGMApproved
	req.ApprovalFlow = []request.ApprovalStep{
		{Role: common_models.RoleManager, DepartmentID: "dept-ops", Status: request.StepApproved},
		{Role: common_models.RoleGeneralManager, Status: request.StepApproved},
		{Role: common_models.RoleHRD, Status: request.StepPending},
	}

	updated, err := ApplyDecision(req, finance, request.StepApproved, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, updated.Status)
	assert.Equal(t, finance.ID, updated.ApprovalFlow[2].DecidedByUserID)
}

func TestApplyDecision_RejectionShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		status request.Status
		actor  common_models.Actor
	}{
		{name: "manager rejects", status: request.StatusPending, actor: mgrOps},
		{name: "gm rejects", status: request.StatusManagerApproved, actor: gm},
		{name: "hrd rejects", status: request.StatusGMApproved, actor: hrd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newPendingRequest()
			req.Status = tt.status
			flow := ResolveApprovalFlow(&req)
			for i := range flow {
				if flow[i].Role == tt.actor.Role || (tt.actor.Role == common_models.RoleManager && i == 0) {
					break
				}
				flow[i].Status = request.StepApproved
			}
			req.ApprovalFlow = flow

			updated, err := ApplyDecision(req, tt.actor, request.StepRejected, "no", time.Now())
			require.NoError(t, err)
			assert.Equal(t, request.StatusRejected, updated.Status)
			assert.True(t, updated.Status.Terminal())

			idx := 0
			for i, step := range updated.ApprovalFlow {
				if step.Status == request.StepRejected {
					idx = i
				}
			}
			// Steps after the rejection stay pending, never evaluated again
			for _, step := range updated.ApprovalFlow[idx+1:] {
				assert.Equal(t, request.StepPending, step.Status)
			}
		})
	}
}

func TestApplyDecision_AuthorizationFailures(t *testing.T) {
	tests := []struct {
		name   string
		status request.Status
		actor  common_models.Actor
	}{
		{name: "staff cannot approve", status: request.StatusPending, actor: staffOps},
		{name: "admin is not a workflow actor", status: request.StatusPending, actor: admin},
		{name: "manager of another department", status: request.StatusPending, actor: mgrFin},
		{name: "gm too early", status: request.StatusPending, actor: gm},
		{name: "hrd too early", status: request.StatusManagerApproved, actor: hrd},
		{name: "manager acting twice", status: request.StatusManagerApproved, actor: mgrOps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newPendingRequest()
			req.Status = tt.status

			_, err := ApplyDecision(req, tt.actor, request.StepApproved, "", time.Now())
			assert.ErrorIs(t, err, ErrNotAuthorized)
		})
	}
}

func TestApplyDecision_TerminalRequestHasNoPendingStep(t *testing.T) {
	req := newPendingRequest()
	req.Status = request.StatusApproved
	req.ApprovalFlow = []request.ApprovalStep{
		{Role: common_models.RoleManager, DepartmentID: "dept-ops", Status: request.StepApproved},
		{Role: common_models.RoleGeneralManager, Status: request.StepApproved},
		{Role: common_models.RoleHRD, Status: request.StepApproved},
	}

	for _, actor := range []common_models.Actor{mgrOps, gm, hrd, finance} {
		_, err := ApplyDecision(req, actor, request.StepApproved, "", time.Now())
		assert.ErrorIs(t, err, ErrNoPendingStep)
	}
}

func TestApplyDecision_RejectedRequestStaysRejected(t *testing.T) {
	req := newPendingRequest()
	req.Status = request.StatusRejected
	req.ApprovalFlow = []request.ApprovalStep{
		{Role: common_models.RoleManager, DepartmentID: "dept-ops", Status: request.StepRejected},
		{Role: common_models.RoleGeneralManager, Status: request.StepPending},
		{Role: common_models.RoleHRD, Status: request.StepPending},
	}

	// The first pending step is the gm's, but a rejected request is not in
	// any role's actionable set
	_, err := ApplyDecision(req, gm, request.StepApproved, "", time.Now())
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestApplyDecision_InvalidAction(t *testing.T) {
	req := newPendingRequest()

	_, err := ApplyDecision(req, mgrOps, request.StepPending, "", time.Now())
	assert.Error(t, err)

	_, err = ApplyDecision(req, mgrOps, request.StepStatus("maybe"), "", time.Now())
	assert.Error(t, err)
}

func TestApplyDecision_DoesNotMutateInput(t *testing.T) {
	req := newPendingRequest()
	req.ApprovalFlow = ResolveApprovalFlow(&req)

	_, err := ApplyDecision(req, mgrOps, request.StepApproved, "ok", time.Now())
	require.NoError(t, err)

	assert.Equal(t, request.StatusPending, req.Status)
	assert.Equal(t, request.StepPending, req.ApprovalFlow[0].Status)
	assert.Empty(t, req.ApprovalFlow[0].DecidedByUserID)
}

func TestApplyDecision_ManagerApprovesDraft(t *testing.T) {
	req := newPendingRequest()
	req.Status = request.StatusDraft

	updated, err := ApplyDecision(req, mgrOps, request.StepApproved, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, request.StatusManagerApproved, updated.Status)
}

func TestCanAct_ExhaustiveNegatives(t *testing.T) {
	allStatuses := []request.Status{
		request.StatusDraft, request.StatusPending, request.StatusManagerApproved,
		request.StatusGMApproved, request.StatusApproved, request.StatusRejected,
	}
	allowed := map[common_models.Role][]request.Status{
		common_models.RoleManager:        {request.StatusDraft, request.StatusPending},
		common_models.RoleGeneralManager: {request.StatusManagerApproved},
		common_models.RoleHRD:            {request.StatusGMApproved},
		common_models.RoleFinance:        {request.StatusGMApproved},
	}
	actors := map[common_models.Role]common_models.Actor{
		common_models.RoleStaff:          staffOps,
		common_models.RoleManager:        mgrOps,
		common_models.RoleGeneralManager: gm,
		common_models.RoleHRD:            hrd,
		common_models.RoleFinance:        finance,
		common_models.RoleAdmin:          admin,
	}

	for role, actor := range actors {
		for _, status := range allStatuses {
			req := newPendingRequest()
			req.Status = status

			want := false
			for _, s := range allowed[role] {
				if s == status {
					want = true
				}
			}
			assert.Equal(t, want, CanAct(&req, actor),
				"role %s on status %s", role, status)
		}
	}
}

func TestCanAct_DepartmentScoping(t *testing.T) {
	req := newPendingRequest()

	assert.True(t, CanAct(&req, mgrOps))
	assert.False(t, CanAct(&req, mgrFin))
	assert.False(t, CanAct(&req, gm))
	assert.False(t, CanAct(&req, staffOps))
	assert.False(t, CanAct(&req, admin))
}

package request

import (
	"context"
	"testing"

	common_models "prestova-one/internal/common/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MockRequestRepo struct {
	Requests   map[string]Request
	FailDupes  int // Create fails with a duplicate key error this many times
	ListFilter bson.M
	ListLimit  int64
}

func newMockRepo() *MockRequestRepo {
	return &MockRequestRepo{Requests: map[string]Request{}}
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

func (m *MockRequestRepo) Create(ctx context.Context, req *Request) error {
	if m.FailDupes > 0 {
		m.FailDupes--
		return duplicateKeyErr()
	}
	if _, exists := m.Requests[req.ID]; exists {
		return duplicateKeyErr()
	}
	m.Requests[req.ID] = *req
	return nil
}

func (m *MockRequestRepo) Get(ctx context.Context, id string) (*Request, error) {
	req, ok := m.Requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := req
	return &found, nil
}

func (m *MockRequestRepo) List(ctx context.Context, filter bson.M, limit, offset int64) ([]Request, int64, error) {
	m.ListFilter = filter
	m.ListLimit = limit
	out := make([]Request, 0, len(m.Requests))
	for _, req := range m.Requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (m *MockRequestRepo) UpdateDecision(ctx context.Context, id string, expectedStatus Status, req *Request) error {
	stored, ok := m.Requests[id]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != expectedStatus {
		return ErrConflict
	}
	m.Requests[id] = *req
	return nil
}

func (m *MockRequestRepo) EnsureIndexes(ctx context.Context) error { return nil }

func passthroughFlow(req *Request) []ApprovalStep {
	if len(req.ApprovalFlow) > 0 {
		return req.ApprovalFlow
	}
	return []ApprovalStep{{Role: common_models.RoleManager, DepartmentID: req.DepartmentID, Status: StepPending}}
}

func newTestService(repo *MockRequestRepo) RequestService {
	return &RequestServiceImpl{
		Repo:        repo,
		ResolveFlow: passthroughFlow,
		Validator:   validator.New(),
		Logger:      zap.NewNop(),
	}
}

var staff = common_models.Actor{ID: "u-staff", Name: "Ops Staff", Role: common_models.RoleStaff, DepartmentID: "dept-ops"}

func TestSubmit_DefaultsFromActor(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	req, err := svc.Submit(context.Background(), staff, SubmitInput{
		Type:   TypeOvertime,
		Detail: Detail{OvertimeDate: "2025-03-10", OvertimeHours: 2.5},
	})
	require.NoError(t, err)

	assert.Equal(t, staff.ID, req.RequesterID)
	assert.Equal(t, staff.Name, req.RequesterName)
	assert.Equal(t, "dept-ops", req.DepartmentID)
	assert.Equal(t, StatusPending, req.Status)
	assert.NotEmpty(t, req.ID)
	assert.Contains(t, repo.Requests, req.ID)
}

func TestSubmit_DraftStaysDraft(t *testing.T) {
	svc := newTestService(newMockRepo())

	req, err := svc.Submit(context.Background(), staff, SubmitInput{
		Type:  TypeLeave,
		Draft: true,
		Detail: Detail{
			StartDate: "2025-04-01",
			EndDate:   "2025-04-03",
			Reason:    "family",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, req.Status)
}

func TestSubmit_RejectsUnknownType(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Submit(context.Background(), staff, SubmitInput{Type: Type("vacation")})
	assert.Error(t, err)
}

func TestSubmit_RetriesOnDuplicateID(t *testing.T) {
	repo := newMockRepo()
	repo.FailDupes = 3
	svc := newTestService(repo)

	req, err := svc.Submit(context.Background(), staff, SubmitInput{Type: TypeMissedPunch})
	require.NoError(t, err)
	assert.Len(t, repo.Requests, 1)
	assert.Contains(t, repo.Requests, req.ID)
}

func TestSubmit_GivesUpAfterTooManyCollisions(t *testing.T) {
	repo := newMockRepo()
	repo.FailDupes = 10
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), staff, SubmitInput{Type: TypeMissedPunch})
	assert.Error(t, err)
}

func TestGet_RequesterAlwaysSeesOwn(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	submitted, err := svc.Submit(context.Background(), staff, SubmitInput{Type: TypeOvertime})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), staff, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, got.ID)
	assert.NotEmpty(t, got.ApprovalFlow)
}

func TestGet_HiddenRequestReportsNotFound(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	submitted, err := svc.Submit(context.Background(), staff, SubmitInput{Type: TypeOvertime})
	require.NoError(t, err)

	other := common_models.Actor{ID: "u-other", Role: common_models.RoleStaff}
	_, err = svc.Get(context.Background(), other, submitted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVisible_AppliesOptions(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), staff, SubmitInput{Type: TypeOvertime})
	require.NoError(t, err)

	_, _, err = svc.ListVisible(context.Background(), staff, ListOptions{
		Status: StatusPending,
		Type:   TypeOvertime,
		Limit:  500,
	})
	require.NoError(t, err)

	assert.Equal(t, staff.ID, repo.ListFilter["requester_id"])
	assert.Equal(t, StatusPending, repo.ListFilter["status"])
	assert.Equal(t, TypeOvertime, repo.ListFilter["type"])
	// Oversized limits are clamped back to the default page size
	assert.Equal(t, int64(50), repo.ListLimit)
}

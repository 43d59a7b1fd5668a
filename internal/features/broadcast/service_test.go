package broadcast

import (
	"context"
	"errors"
	"testing"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/request"
	"prestova-one/internal/features/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockBroadcastRepo struct {
	Lists map[string]*BroadcastList
}

func (m *MockBroadcastRepo) Create(ctx context.Context, list *BroadcastList) error {
	m.Lists[list.Name] = list
	return nil
}
func (m *MockBroadcastRepo) Get(ctx context.Context, id string) (*BroadcastList, error) {
	return nil, ErrNotFound
}
func (m *MockBroadcastRepo) FindByName(ctx context.Context, name string) (*BroadcastList, error) {
	list, ok := m.Lists[name]
	if !ok {
		return nil, ErrNotFound
	}
	return list, nil
}
func (m *MockBroadcastRepo) List(ctx context.Context) ([]BroadcastList, error) { return nil, nil }
func (m *MockBroadcastRepo) Update(ctx context.Context, id string, list *BroadcastList) error {
	return nil
}
func (m *MockBroadcastRepo) Delete(ctx context.Context, id string) error { return nil }

type MockUserRepo struct {
	Users map[string]*user.User
}

func (m *MockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, user.ErrNotFound
}
func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}
func (m *MockUserRepo) FindByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	return nil, nil
}
func (m *MockUserRepo) List(ctx context.Context, filter bson.M, limit, offset int64) ([]user.User, int64, error) {
	return nil, 0, nil
}
func (m *MockUserRepo) Update(ctx context.Context, id string, u *user.User) error { return nil }
func (m *MockUserRepo) Delete(ctx context.Context, id string) error               { return nil }
func (m *MockUserRepo) EnsureIndexes(ctx context.Context) error                   { return nil }

type MockEmailService struct {
	SentTo  [][]string
	SendErr error
}

func (m *MockEmailService) SendEmail(ctx context.Context, to []string, subject, body string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.SentTo = append(m.SentTo, to)
	return nil
}

func (m *MockEmailService) SendEmailWithAttachment(ctx context.Context, to []string, subject, body string, attachmentName string, attachmentData []byte) error {
	return m.SendEmail(ctx, to, subject, body)
}

func newTestBroadcastService(mail *MockEmailService) *BroadcastServiceImpl {
	return &BroadcastServiceImpl{
		Repo: &MockBroadcastRepo{Lists: map[string]*BroadcastList{
			"decisions": {Name: "decisions", Recipients: []string{"hrd@prestova.local"}},
		}},
		UserRepo: &MockUserRepo{Users: map[string]*user.User{
			"u-staff": {Username: "staff.ops", Email: "staff.ops@prestova.local"},
		}},
		EmailService: mail,
		Logger:       zap.NewNop(),
	}
}

func decidedRequest(status request.Status) *request.Request {
	return &request.Request{
		ID:            "1741597200000",
		Type:          request.TypeLeave,
		RequesterID:   "u-staff",
		RequesterName: "Ops Staff",
		Status:        status,
	}
}

var approver = common_models.Actor{ID: "u-mgr", Name: "Ops Manager", Role: common_models.RoleManager}

func TestNotifyDecision_IntermediateStepMailsRequesterOnly(t *testing.T) {
	mail := &MockEmailService{}
	svc := newTestBroadcastService(mail)

	svc.NotifyDecision(context.Background(), decidedRequest(request.StatusManagerApproved), approver, request.StepApproved, "")

	require.Len(t, mail.SentTo, 1)
	assert.Equal(t, []string{"staff.ops@prestova.local"}, mail.SentTo[0])
}

func TestNotifyDecision_TerminalStepIncludesBroadcastList(t *testing.T) {
	mail := &MockEmailService{}
	svc := newTestBroadcastService(mail)

	svc.NotifyDecision(context.Background(), decidedRequest(request.StatusApproved), approver, request.StepApproved, "done")

	require.Len(t, mail.SentTo, 1)
	assert.Equal(t, []string{"staff.ops@prestova.local", "hrd@prestova.local"}, mail.SentTo[0])
}

func TestNotifyDecision_MailFailureDoesNotPanic(t *testing.T) {
	mail := &MockEmailService{SendErr: errors.New("smtp down")}
	svc := newTestBroadcastService(mail)

	// Failures are logged, never propagated
	svc.NotifyDecision(context.Background(), decidedRequest(request.StatusRejected), approver, request.StepRejected, "")
	assert.Empty(t, mail.SentTo)
}

func TestNotifyDecision_UnknownRequesterSkipsQuietly(t *testing.T) {
	mail := &MockEmailService{}
	svc := newTestBroadcastService(mail)
	svc.UserRepo = &MockUserRepo{Users: map[string]*user.User{}}

	svc.NotifyDecision(context.Background(), decidedRequest(request.StatusManagerApproved), approver, request.StepApproved, "")
	assert.Empty(t, mail.SentTo)
}

func TestRecipients_MissingListIsEmptyNotError(t *testing.T) {
	svc := newTestBroadcastService(&MockEmailService{})

	recipients, err := svc.Recipients(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestCreateList_RequiresName(t *testing.T) {
	svc := newTestBroadcastService(&MockEmailService{})

	_, err := svc.CreateList(context.Background(), "", nil)
	assert.Error(t, err)
}

package recap

import (
	"bytes"
	"context"
	"testing"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/config"
	"prestova-one/internal/features/broadcast"
	"prestova-one/internal/features/department"
	"prestova-one/internal/features/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockRequestRepo struct {
	Requests   []request.Request
	ListFilter bson.M
}

func (m *MockRequestRepo) Create(ctx context.Context, req *request.Request) error { return nil }

func (m *MockRequestRepo) Get(ctx context.Context, id string) (*request.Request, error) {
	return nil, request.ErrNotFound
}

func (m *MockRequestRepo) List(ctx context.Context, filter bson.M, limit, offset int64) ([]request.Request, int64, error) {
	m.ListFilter = filter
	return m.Requests, int64(len(m.Requests)), nil
}

func (m *MockRequestRepo) UpdateDecision(ctx context.Context, id string, expectedStatus request.Status, req *request.Request) error {
	return nil
}

func (m *MockRequestRepo) EnsureIndexes(ctx context.Context) error { return nil }

type MockDepartmentService struct{}

func (m *MockDepartmentService) CreateDepartment(ctx context.Context, name, code string) (*department.Department, error) {
	return nil, nil
}
func (m *MockDepartmentService) GetDepartment(ctx context.Context, id string) (*department.Department, error) {
	return nil, department.ErrNotFound
}
func (m *MockDepartmentService) GetDepartmentName(ctx context.Context, id string) (string, error) {
	if id == "dept-ops" {
		return "Operations", nil
	}
	return "", nil
}
func (m *MockDepartmentService) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}
func (m *MockDepartmentService) UpdateDepartment(ctx context.Context, id, name, code string) (*department.Department, error) {
	return nil, nil
}
func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, id string) error { return nil }

type MockBroadcastService struct {
	RecipientsByList map[string][]string
}

func (m *MockBroadcastService) CreateList(ctx context.Context, name string, recipients []string) (*broadcast.BroadcastList, error) {
	return nil, nil
}
func (m *MockBroadcastService) GetList(ctx context.Context, id string) (*broadcast.BroadcastList, error) {
	return nil, nil
}
func (m *MockBroadcastService) ListLists(ctx context.Context) ([]broadcast.BroadcastList, error) {
	return nil, nil
}
func (m *MockBroadcastService) UpdateList(ctx context.Context, id string, name string, recipients []string) (*broadcast.BroadcastList, error) {
	return nil, nil
}
func (m *MockBroadcastService) DeleteList(ctx context.Context, id string) error { return nil }
func (m *MockBroadcastService) NotifyDecision(ctx context.Context, req *request.Request, actor common_models.Actor, action request.StepStatus, comment string) {
}
func (m *MockBroadcastService) Recipients(ctx context.Context, name string) ([]string, error) {
	return m.RecipientsByList[name], nil
}

type MockEmailService struct {
	SentTo         []string
	SentSubject    string
	SentAttachment string
	SentData       []byte
}

func (m *MockEmailService) SendEmail(ctx context.Context, to []string, subject, body string) error {
	m.SentTo = to
	m.SentSubject = subject
	return nil
}

func (m *MockEmailService) SendEmailWithAttachment(ctx context.Context, to []string, subject, body string, attachmentName string, attachmentData []byte) error {
	m.SentTo = to
	m.SentSubject = subject
	m.SentAttachment = attachmentName
	m.SentData = attachmentData
	return nil
}

func monthRequests() []request.Request {
	created := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	return []request.Request{
		{
			ID:            "1741161600000",
			Type:          request.TypeLeave,
			RequesterName: "Ops Staff",
			DepartmentID:  "dept-ops",
			Status:        request.StatusApproved,
			CreatedAt:     created,
			UpdatedAt:     created.Add(48 * time.Hour),
		},
		{
			ID:            "1741161600001",
			Type:          request.TypeOvertime,
			RequesterName: "Ops Staff",
			DepartmentID:  "dept-ops",
			Status:        request.StatusRejected,
			CreatedAt:     created.Add(time.Hour),
			UpdatedAt:     created.Add(time.Hour),
		},
		{
			ID:            "1741161600002",
			Type:          request.TypeLeave,
			RequesterName: "Other Staff",
			DepartmentID:  "dept-fin",
			Status:        request.StatusPending,
			CreatedAt:     created.Add(2 * time.Hour),
			UpdatedAt:     created.Add(2 * time.Hour),
		},
	}
}

func newTestRecapService(repo *MockRequestRepo, mail *MockEmailService) RecapService {
	return &RecapServiceImpl{
		requestRepo:       repo,
		departmentService: &MockDepartmentService{},
		broadcastService: &MockBroadcastService{RecipientsByList: map[string][]string{
			"hrd-recap": {"hrd@prestova.local"},
		}},
		emailService: mail,
		config: &config.Config{
			RecapCron:          "0 6 1 * *",
			RecapBroadcastList: "hrd-recap",
		},
		logger: zap.NewNop(),
	}
}

func TestBuildSummary(t *testing.T) {
	repo := &MockRequestRepo{Requests: monthRequests()}
	svc := newTestRecapService(repo, &MockEmailService{})

	summary, err := svc.BuildSummary(context.Background(), 2025, time.March, Filters{})
	require.NoError(t, err)

	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(1), summary.ByStatus["approved"])
	assert.Equal(t, int64(1), summary.ByStatus["rejected"])
	assert.Equal(t, int64(1), summary.ByStatus["pending"])
	assert.Equal(t, int64(2), summary.ByType["leave"])
	assert.Equal(t, int64(1), summary.ByType["overtime"])

	// The store filter must bound created_at to the month
	window, ok := repo.ListFilter["created_at"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), window["$gte"])
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), window["$lt"])
}

func TestBuildSummary_NarrowingFilters(t *testing.T) {
	repo := &MockRequestRepo{Requests: monthRequests()}
	svc := newTestRecapService(repo, &MockEmailService{})

	_, err := svc.BuildSummary(context.Background(), 2025, time.March, Filters{
		Type:         request.TypeLeave,
		DepartmentID: "dept-ops",
		Status:       request.StatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, request.TypeLeave, repo.ListFilter["type"])
	assert.Equal(t, "dept-ops", repo.ListFilter["department_id"])
	assert.Equal(t, request.StatusApproved, repo.ListFilter["status"])
}

func TestExportToExcel_RoundTrip(t *testing.T) {
	repo := &MockRequestRepo{Requests: monthRequests()}
	svc := newTestRecapService(repo, &MockEmailService{})

	data, filename, err := svc.ExportToExcel(context.Background(), 2025, time.March, Filters{})
	require.NoError(t, err)
	assert.Equal(t, "recap-2025-03.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Recap")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + three requests

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "1741161600000", rows[1][0])
	assert.Equal(t, "leave", rows[1][1])
	assert.Equal(t, "Operations", rows[1][3])
	assert.Equal(t, "approved", rows[1][4])
}

func TestSendMonthlyRecap(t *testing.T) {
	repo := &MockRequestRepo{Requests: monthRequests()}
	mail := &MockEmailService{}
	svc := newTestRecapService(repo, mail)

	err := svc.SendMonthlyRecap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"hrd@prestova.local"}, mail.SentTo)
	assert.Contains(t, mail.SentSubject, "recap")
	assert.Contains(t, mail.SentAttachment, ".xlsx")
	assert.NotEmpty(t, mail.SentData)
}

func TestSendMonthlyRecap_NoRecipients(t *testing.T) {
	repo := &MockRequestRepo{Requests: monthRequests()}
	mail := &MockEmailService{}
	svc := &RecapServiceImpl{
		requestRepo:       repo,
		departmentService: &MockDepartmentService{},
		broadcastService:  &MockBroadcastService{RecipientsByList: map[string][]string{}},
		emailService:      mail,
		config:            &config.Config{RecapBroadcastList: "hrd-recap"},
		logger:            zap.NewNop(),
	}

	err := svc.SendMonthlyRecap(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mail.SentTo)
}

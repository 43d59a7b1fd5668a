package recap

import (
	"context"
	"fmt"
	"time"

	"prestova-one/internal/config"
	"prestova-one/internal/features/broadcast"
	"prestova-one/internal/features/department"
	"prestova-one/internal/features/email"
	"prestova-one/internal/features/request"

	"github.com/robfig/cron/v3"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Filters narrows a recap beyond its month window. Zero values mean "all".
type Filters struct {
	Type         request.Type
	DepartmentID string
	Status       request.Status
}

type RecapService interface {
	BuildSummary(ctx context.Context, year int, month time.Month, filters Filters) (*Summary, error)
	ExportToExcel(ctx context.Context, year int, month time.Month, filters Filters) ([]byte, string, error)
	// SendMonthlyRecap emails the previous month's recap to the configured
	// broadcast list. Invoked by the scheduler but also callable on demand.
	SendMonthlyRecap(ctx context.Context) error
	InitializeScheduler(ctx context.Context) error
	StopScheduler() error
}

type RecapServiceImpl struct {
	requestRepo       request.RequestRepository
	departmentService department.DepartmentService
	broadcastService  broadcast.BroadcastService
	emailService      email.EmailService
	config            *config.Config
	logger            *zap.Logger

	scheduler *cron.Cron
}

func NewRecapService(
	requestRepo request.RequestRepository,
	departmentService department.DepartmentService,
	broadcastService broadcast.BroadcastService,
	emailService email.EmailService,
	config *config.Config,
	logger *zap.Logger,
) RecapService {
	return &RecapServiceImpl{
		requestRepo:       requestRepo,
		departmentService: departmentService,
		broadcastService:  broadcastService,
		emailService:      emailService,
		config:            config,
		logger:            logger,
	}
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (s *RecapServiceImpl) BuildSummary(ctx context.Context, year int, month time.Month, filters Filters) (*Summary, error) {
	start, end := monthRange(year, month)
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	if filters.Type != "" {
		filter["type"] = filters.Type
	}
	if filters.DepartmentID != "" {
		filter["department_id"] = filters.DepartmentID
	}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}

	requests, total, err := s.requestRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Year:     year,
		Month:    int(month),
		Total:    total,
		ByStatus: make(map[string]int64),
		ByType:   make(map[string]int64),
		Requests: requests,
	}
	for _, req := range requests {
		summary.ByStatus[string(req.Status)]++
		summary.ByType[string(req.Type)]++
	}

	return summary, nil
}

var recapColumns = []string{
	"ID", "Type", "Requester", "Department", "Status", "Created At", "Updated At",
}

func (s *RecapServiceImpl) ExportToExcel(ctx context.Context, year int, month time.Month, filters Filters) ([]byte, string, error) {
	summary, err := s.BuildSummary(ctx, year, month, filters)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Recap"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range recapColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	deptNames := make(map[string]string)
	for rowIdx, req := range summary.Requests {
		deptName, ok := deptNames[req.DepartmentID]
		if !ok {
			deptName, _ = s.departmentService.GetDepartmentName(ctx, req.DepartmentID)
			deptNames[req.DepartmentID] = deptName
		}

		values := []any{
			req.ID,
			string(req.Type),
			req.RequesterName,
			deptName,
			string(req.Status),
			req.CreatedAt.Format("2006-01-02 15:04:05"),
			req.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range recapColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("recap-%04d-%02d.xlsx", year, int(month))
	return buffer.Bytes(), filename, nil
}

func (s *RecapServiceImpl) SendMonthlyRecap(ctx context.Context) error {
	prev := time.Now().UTC().AddDate(0, -1, 0)
	year, month := prev.Year(), prev.Month()

	recipients, err := s.broadcastService.Recipients(ctx, s.config.RecapBroadcastList)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		s.logger.Warn("monthly recap skipped, broadcast list has no recipients",
			zap.String("list", s.config.RecapBroadcastList))
		return nil
	}

	data, filename, err := s.ExportToExcel(ctx, year, month, Filters{})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Monthly request recap %04d-%02d", year, int(month))
	body := fmt.Sprintf("Attached is the request recap for %s %d.", month.String(), year)

	if err := s.emailService.SendEmailWithAttachment(ctx, recipients, subject, body, filename, data); err != nil {
		return err
	}

	s.logger.Info("monthly recap sent",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("recipients", len(recipients)))
	return nil
}

func (s *RecapServiceImpl) InitializeScheduler(ctx context.Context) error {
	s.scheduler = cron.New()

	_, err := s.scheduler.AddFunc(s.config.RecapCron, func() {
		if err := s.SendMonthlyRecap(context.Background()); err != nil {
			s.logger.Error("monthly recap failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid recap cron expression: %w", err)
	}

	s.scheduler.Start()
	return nil
}

func (s *RecapServiceImpl) StopScheduler() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

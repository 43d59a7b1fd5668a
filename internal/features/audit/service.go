package audit

import (
	"context"
	"time"

	common_models "prestova-one/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type AuditService interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, actor common_models.Actor, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]common_models.AuditLog, error)
}

type AuditServiceImpl struct {
	Repo   AuditRepository
	Logger *zap.Logger
}

func NewAuditService(repo AuditRepository, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{Repo: repo, Logger: logger}
}

func (s *AuditServiceImpl) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, actor common_models.Actor, changes map[string]common_models.Change) error {
	entry := &common_models.AuditLog{
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Changes:   changes,
		Timestamp: time.Now(),
	}

	if err := s.Repo.Create(ctx, entry); err != nil {
		// Audit failures must not break the mutation they describe
		s.Logger.Warn("failed to write audit log", zap.Error(err), zap.String("recordId", recordID))
		return err
	}
	return nil
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]common_models.AuditLog, error) {
	filter := bson.M{}
	for k, v := range filters {
		filter[k] = v
	}
	return s.Repo.List(ctx, filter, limit, offset)
}

package broadcast

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/email"
	"prestova-one/internal/features/request"
	"prestova-one/internal/features/user"

	"go.uber.org/zap"
)

type BroadcastService interface {
	CreateList(ctx context.Context, name string, recipients []string) (*BroadcastList, error)
	GetList(ctx context.Context, id string) (*BroadcastList, error)
	ListLists(ctx context.Context) ([]BroadcastList, error)
	UpdateList(ctx context.Context, id string, name string, recipients []string) (*BroadcastList, error)
	DeleteList(ctx context.Context, id string) error

	// Recipients resolves a list by name; a missing list is not an error,
	// just an empty recipient set.
	Recipients(ctx context.Context, name string) ([]string, error)

	// NotifyDecision emails the requester about every decision and, once the
	// request is terminal, the department's broadcast list. Failures are
	// logged, never propagated: mail must not undo an already-persisted
	// decision.
	NotifyDecision(ctx context.Context, req *request.Request, actor common_models.Actor, action request.StepStatus, comment string)
}

type BroadcastServiceImpl struct {
	Repo         BroadcastRepository
	UserRepo     user.UserRepository
	EmailService email.EmailService
	Logger       *zap.Logger
}

func NewBroadcastService(repo BroadcastRepository, userRepo user.UserRepository, emailService email.EmailService, logger *zap.Logger) BroadcastService {
	return &BroadcastServiceImpl{
		Repo:         repo,
		UserRepo:     userRepo,
		EmailService: emailService,
		Logger:       logger,
	}
}

func (s *BroadcastServiceImpl) CreateList(ctx context.Context, name string, recipients []string) (*BroadcastList, error) {
	if name == "" {
		return nil, errors.New("broadcast list name is required")
	}
	now := time.Now()
	list := &BroadcastList{
		Name:       name,
		Recipients: recipients,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *BroadcastServiceImpl) GetList(ctx context.Context, id string) (*BroadcastList, error) {
	return s.Repo.Get(ctx, id)
}

func (s *BroadcastServiceImpl) ListLists(ctx context.Context) ([]BroadcastList, error) {
	return s.Repo.List(ctx)
}

func (s *BroadcastServiceImpl) UpdateList(ctx context.Context, id string, name string, recipients []string) (*BroadcastList, error) {
	list, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		list.Name = name
	}
	if recipients != nil {
		list.Recipients = recipients
	}
	if err := s.Repo.Update(ctx, id, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *BroadcastServiceImpl) DeleteList(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *BroadcastServiceImpl) Recipients(ctx context.Context, name string) ([]string, error) {
	list, err := s.Repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list.Recipients, nil
}

func (s *BroadcastServiceImpl) NotifyDecision(ctx context.Context, req *request.Request, actor common_models.Actor, action request.StepStatus, comment string) {
	subject := fmt.Sprintf("[Prestova One] %s request %s: %s", req.Type, req.ID, req.Status)
	body := fmt.Sprintf("Request %s (%s) submitted by %s was %s by %s.",
		req.ID, req.Type, req.RequesterName, action, actor.Name)
	if comment != "" {
		body += fmt.Sprintf("\nComment: %s", comment)
	}

	to := []string{}
	if requester, err := s.UserRepo.FindByID(ctx, req.RequesterID); err == nil && requester.Email != "" {
		to = append(to, requester.Email)
	}

	if req.Status.Terminal() {
		if recipients, err := s.Recipients(ctx, "decisions"); err == nil {
			to = append(to, recipients...)
		}
	}

	if len(to) == 0 {
		return
	}

	if err := s.EmailService.SendEmail(ctx, to, subject, body); err != nil {
		s.Logger.Warn("decision notification email failed",
			zap.Error(err), zap.String("requestId", req.ID))
	}
}

package auth

import (
	"context"
	"errors"

	common_models "prestova-one/internal/common/models"
	"prestova-one/internal/features/audit"
	"prestova-one/internal/features/user"
	"prestova-one/pkg/utils"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *user.User, error)
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewAuthService(userRepo user.UserRepository, auditService audit.AuditService, logger *zap.Logger) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	u, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !u.Active || !utils.CheckPassword(u.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID.Hex(), u.DisplayName, u.Role, u.DepartmentID)
	if err != nil {
		return "", nil, err
	}

	actor := common_models.Actor{ID: u.ID.Hex(), Name: u.DisplayName, Role: u.Role, DepartmentID: u.DepartmentID}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionLogin, "users", u.ID.Hex(), actor, nil)

	s.Logger.Info("user logged in", zap.String("actorId", u.ID.Hex()), zap.String("role", string(u.Role)))
	return token, u, nil
}

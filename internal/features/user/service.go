package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "prestova-one/internal/common/models"
	"prestova-one/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type CreateUserInput struct {
	Username     string             `json:"username"`
	Password     string             `json:"password"`
	DisplayName  string             `json:"display_name"`
	Email        string             `json:"email"`
	Role         common_models.Role `json:"role"`
	DepartmentID string             `json:"department_id"`
}

type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, departmentID string, limit, offset int64) ([]User, int64, error)
	UpdateUser(ctx context.Context, id string, input CreateUserInput) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	Repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &UserServiceImpl{Repo: repo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.New("username and password are required")
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("unknown role: %s", input.Role)
	}
	if input.Role == common_models.RoleManager && input.DepartmentID == "" {
		return nil, errors.New("a manager must belong to a department")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		Username:     input.Username,
		Password:     hash,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, departmentID string, limit, offset int64) ([]User, int64, error) {
	filter := bson.M{}
	if departmentID != "" {
		filter["department_id"] = departmentID
	}
	return s.Repo.List(ctx, filter, limit, offset)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, input CreateUserInput) (*User, error) {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("unknown role: %s", input.Role)
		}
		user.Role = input.Role
	}
	if input.DepartmentID != "" {
		user.DepartmentID = input.DepartmentID
	}
	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	} else {
		user.Password = ""
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, user); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

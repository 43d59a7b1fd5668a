package department

import (
	"context"
	"errors"
	"time"
)

type DepartmentService interface {
	CreateDepartment(ctx context.Context, name, code string) (*Department, error)
	GetDepartment(ctx context.Context, id string) (*Department, error)
	// GetDepartmentName resolves a department id to its display name;
	// unknown ids resolve to an empty string rather than an error.
	GetDepartmentName(ctx context.Context, id string) (string, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	UpdateDepartment(ctx context.Context, id, name, code string) (*Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type DepartmentServiceImpl struct {
	Repo DepartmentRepository
}

func NewDepartmentService(repo DepartmentRepository) DepartmentService {
	return &DepartmentServiceImpl{Repo: repo}
}

func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, name, code string) (*Department, error) {
	if name == "" {
		return nil, errors.New("department name is required")
	}
	now := time.Now()
	department := &Department{
		Name:      name,
		Code:      code,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (*Department, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DepartmentServiceImpl) GetDepartmentName(ctx context.Context, id string) (string, error) {
	department, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return department.Name, nil
}

func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.Repo.List(ctx)
}

func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, id, name, code string) (*Department, error) {
	department, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		department.Name = name
	}
	if code != "" {
		department.Code = code
	}
	department.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, id, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

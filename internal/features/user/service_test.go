package user

import (
	"context"
	"testing"

	common_models "prestova-one/internal/common/models"
	"prestova-one/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	Users map[string]*User
}

func newMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: map[string]*User{}}
}

func (m *MockUserRepo) Create(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	stored := *u
	m.Users[u.ID.Hex()] = &stored
	return nil
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range m.Users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *u
	return &found, nil
}

func (m *MockUserRepo) FindByIDs(ctx context.Context, ids []string) ([]User, error) {
	return nil, nil
}

func (m *MockUserRepo) List(ctx context.Context, filter bson.M, limit, offset int64) ([]User, int64, error) {
	out := make([]User, 0, len(m.Users))
	for _, u := range m.Users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *MockUserRepo) Update(ctx context.Context, id string, u *User) error {
	stored, ok := m.Users[id]
	if !ok {
		return ErrNotFound
	}
	password := stored.Password
	updated := *u
	if updated.Password == "" {
		updated.Password = password
	}
	updated.ID = stored.ID
	m.Users[id] = &updated
	return nil
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	delete(m.Users, id)
	return nil
}

func (m *MockUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username:    "staff.ops",
		Password:    "secret123",
		DisplayName: "Ops Staff",
		Email:       "staff.ops@prestova.local",
		Role:        common_models.RoleStaff,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "secret123"))
	assert.True(t, created.Active)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{
			name:  "missing username",
			input: CreateUserInput{Password: "x", Role: common_models.RoleStaff},
		},
		{
			name:  "missing password",
			input: CreateUserInput{Username: "x", Role: common_models.RoleStaff},
		},
		{
			name:  "unknown role",
			input: CreateUserInput{Username: "x", Password: "y", Role: common_models.Role("ceo")},
		},
		{
			name:  "manager without department",
			input: CreateUserInput{Username: "x", Password: "y", Role: common_models.RoleManager},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}
}

func TestUpdateUser_KeepsPasswordWhenOmitted(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "staff.ops",
		Password: "secret123",
		Role:     common_models.RoleStaff,
	})
	require.NoError(t, err)
	oldHash := repo.Users[created.ID.Hex()].Password

	_, err = svc.UpdateUser(context.Background(), created.ID.Hex(), CreateUserInput{
		DisplayName: "Renamed",
	})
	require.NoError(t, err)

	stored := repo.Users[created.ID.Hex()]
	assert.Equal(t, "Renamed", stored.DisplayName)
	assert.Equal(t, oldHash, stored.Password)
	assert.Equal(t, "staff.ops", stored.Username)
}

func TestUpdateUser_RejectsUnknownRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "staff.ops",
		Password: "secret123",
		Role:     common_models.RoleStaff,
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), created.ID.Hex(), CreateUserInput{
		Role: common_models.Role("intern"),
	})
	assert.Error(t, err)
}

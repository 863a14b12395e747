package user

import (
	"context"
	"testing"

	common_models "go-legal/internal/common/models"

	"github.com/stretchr/testify/assert"
)

type MockUserRepo struct {
	Created []common_models.User
}

func (m *MockUserRepo) Create(ctx context.Context, user *common_models.User) error {
	m.Created = append(m.Created, *user)
	return nil
}
func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*common_models.User, error) {
	return nil, nil
}
func (m *MockUserRepo) FindByIDs(ctx context.Context, ids []string) ([]common_models.User, error) {
	return nil, nil
}
func (m *MockUserRepo) FindByRoles(ctx context.Context, roles []common_models.Role) ([]common_models.User, error) {
	return m.Created, nil
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int64) ([]common_models.User, error) {
	return m.Created, nil
}

func TestCreateUserValidatesRole(t *testing.T) {
	repo := &MockUserRepo{}
	svc := NewUserService(repo)

	err := svc.CreateUser(context.Background(), &common_models.User{Email: "a@b.c", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidUser)

	err = svc.CreateUser(context.Background(), &common_models.User{Email: "a@b.c", Role: common_models.RoleParalegal})
	assert.NoError(t, err)
	assert.Equal(t, "active", repo.Created[0].Status)
}

package user

import (
	"context"
	"errors"
	"time"

	common_models "go-legal/internal/common/models"
)

var ErrInvalidUser = errors.New("user requires an email and a known role")

type UserService interface {
	CreateUser(ctx context.Context, user *common_models.User) error
	GetUser(ctx context.Context, id string) (*common_models.User, error)
	ListUsers(ctx context.Context, page, limit int64) ([]common_models.User, error)
	FindByRoles(ctx context.Context, roles []common_models.Role) ([]common_models.User, error)
}

type UserServiceImpl struct {
	Repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &UserServiceImpl{Repo: repo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, user *common_models.User) error {
	if user.Email == "" || !user.Role.IsValid() {
		return ErrInvalidUser
	}
	if user.Status == "" {
		user.Status = "active"
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return s.Repo.Create(ctx, user)
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*common_models.User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, page, limit int64) ([]common_models.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.Repo.List(ctx, limit, (page-1)*limit)
}

func (s *UserServiceImpl) FindByRoles(ctx context.Context, roles []common_models.Role) ([]common_models.User, error) {
	return s.Repo.FindByRoles(ctx, roles)
}

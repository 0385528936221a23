package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"ContactBook/internal/model/dto"
	"ContactBook/internal/repository"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/storage/database"
	"ContactBook/utils"
)

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = NewUserService(repository.NewUserRepository(database.DB()))
	})
	return userService
}

// UserService 当前用户资料
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get 查询当前用户资料
func (s *UserService) Get(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.UserNotFound()
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &dto.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Update 更新资料，只落请求里出现的字段
func (s *UserService) Update(
	ctx context.Context,
	username string,
	req dto.UpdateUserRequest,
) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.UserNotFound()
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["password"] = hash
	}

	if err := s.users.UpdateFields(ctx, username, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.UserNotFound()
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &dto.UserResponse{Username: user.Username, Name: user.Name}, nil
}

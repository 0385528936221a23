package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContactBook/internal/cache"
	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/repository"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/token"
	"ContactBook/storage/database"
	"ContactBook/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = NewAuthService(
			repository.NewUserRepository(database.DB()),
			redisTokenStore{},
			token.GenerateTokenPair,
			token.ValidateRefreshToken,
		)
	})

	return authService
}

// tokenStore refresh token 的存取，按用户名一人一份
type tokenStore interface {
	Save(ctx context.Context, username, refreshToken string) error
	Load(ctx context.Context, username string) (string, error)
	Drop(ctx context.Context, username string) error
}

type redisTokenStore struct{}

func (redisTokenStore) Save(ctx context.Context, username, refreshToken string) error {
	return cache.SetRefreshToken(ctx, username, refreshToken)
}

func (redisTokenStore) Load(ctx context.Context, username string) (string, error) {
	return cache.GetRefreshToken(ctx, username)
}

func (redisTokenStore) Drop(ctx context.Context, username string) error {
	return cache.DeleteRefreshToken(ctx, username)
}

// AuthService 账号注册登录，核心 CRUD 假设的"上游协作方"
type AuthService struct {
	users  repository.UserRepository
	tokens tokenStore
	mint   func(username string) (access, refresh string, expiresIn int, err error)
	verify func(refreshToken string) (username string, err error)
}

func NewAuthService(
	users repository.UserRepository,
	tokens tokenStore,
	mint func(string) (string, string, int, error),
	verify func(string) (string, error),
) *AuthService {
	return &AuthService{users: users, tokens: tokens, mint: mint, verify: verify}
}

// Register 注册新用户，用户名唯一
func (s *AuthService) Register(
	ctx context.Context,
	req dto.RegisterUserRequest,
) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	total, err := s.users.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if total > 0 {
		return nil, pkgerrors.UsernameTaken()
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger.Info("User registered", zap.String("username", user.Username))

	return &dto.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Login 校验密码并签发令牌对。用户不存在和密码错误对外同一个说法
func (s *AuthService) Login(
	ctx context.Context,
	req dto.LoginUserRequest,
) (*dto.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.WrongCredentials()
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, pkgerrors.WrongCredentials()
	}

	return s.issueTokens(ctx, user.Username)
}

// Refresh 用仍在 Redis 里的 refresh token 换发新令牌对
func (s *AuthService) Refresh(
	ctx context.Context,
	req dto.RefreshTokenRequest,
) (*dto.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	username, err := s.verify(req.RefreshToken)
	if err != nil {
		return nil, pkgerrors.InvalidToken()
	}

	stored, err := s.tokens.Load(ctx, username)
	if err != nil || stored != req.RefreshToken {
		// 已登出或被换发过的 token 一律拒绝
		return nil, pkgerrors.InvalidToken()
	}

	return s.issueTokens(ctx, username)
}

// Logout 丢弃 refresh token，access token 等自然过期
func (s *AuthService) Logout(ctx context.Context, username string) error {
	if err := s.tokens.Drop(ctx, username); err != nil {
		return fmt.Errorf("failed to drop refresh token: %w", err)
	}

	logger.Logger.Info("User logged out", zap.String("username", username))
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, username string) (*dto.TokenResponse, error) {
	access, refresh, expiresIn, err := s.mint(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.tokens.Save(ctx, username, refresh); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	}, nil
}

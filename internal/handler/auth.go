package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"ContactBook/internal/middleware"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/service"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/response"
)

// Register 注册新用户
// POST /v1/auth/register
func Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().Register(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// Login 登录，签发令牌对
// POST /v1/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginUserRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().Login(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// RefreshToken 换发令牌对
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().Refresh(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// Logout 登出，作废 refresh token
// DELETE /v1/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	if err := service.Auth().Logout(ctx, username); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, true)
}

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

// GetMe 获取当前用户资料
// GET /v1/users/me
func GetMe(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	resp, err := service.User().Get(ctx, username)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// UpdateMe 更新当前用户资料
// PATCH /v1/users/me
func UpdateMe(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.User().Update(ctx, username, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

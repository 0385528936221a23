package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"ContactBook/internal/middleware"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/service"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/response"
)

// CreateContact 创建联系人
// POST /v1/contacts
func CreateContact(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Contact().Create(ctx, username, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// GetContact 查询单个联系人
// GET /v1/contacts/:contact_id
func GetContact(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	contactID, err := parseContactID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	resp, err := service.Contact().Get(ctx, username, contactID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// UpdateContact 部分更新联系人
// PATCH /v1/contacts/:contact_id
func UpdateContact(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	contactID, err := parseContactID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	req.ID = contactID

	resp, err := service.Contact().Update(ctx, username, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// DeleteContact 删除联系人，返回删除前的最后状态
// DELETE /v1/contacts/:contact_id
func DeleteContact(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	contactID, err := parseContactID(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	resp, err := service.Contact().Remove(ctx, username, contactID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// SearchContacts 条件搜索加分页
// GET /v1/contacts?name=&email=&phone=&page=&size=
func SearchContacts(ctx context.Context, c *app.RequestContext) {
	username, ok := middleware.GetUsername(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized())
		return
	}

	page, err := parsePositiveQuery(c, "page", 1)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	size, err := parsePositiveQuery(c, "size", 10)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	req := dto.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  page,
		Size:  size,
	}

	items, paging, err := service.Contact().Search(ctx, username, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithPaging(ctx, c, items, paging)
}

func parseContactID(c *app.RequestContext) (int64, error) {
	contactID, err := strconv.ParseInt(c.Param("contact_id"), 10, 64)
	if err != nil {
		return 0, pkgerrors.Validation(map[string]string{"contact_id": "must be a number"})
	}
	return contactID, nil
}

// parsePositiveQuery 解析分页参数，缺省用默认值，显式的非法值按校验错误处理
func parsePositiveQuery(c *app.RequestContext, name string, defaultValue int) (int, error) {
	raw := c.DefaultQuery(name, strconv.Itoa(defaultValue))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Validation(map[string]string{name: "must be a number"})
	}
	return value, nil
}

package dto

import (
	pkgerrors "ContactBook/pkg/errors"
)

// ========== User 相关 DTO ==========

// UserResponse 用户对外投影，不含密码
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UpdateUserRequest 更新资料，name 和 password 至少一个
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r UpdateUserRequest) Validate() error {
	fields := map[string]string{}

	if r.Name == nil && r.Password == nil {
		fields["name"] = "at least one field must be provided"
	}
	if r.Name != nil {
		checkRequired(fields, "name", *r.Name, 100)
	}
	if r.Password != nil {
		checkPassword(fields, *r.Password, true)
	}

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

package dto

import (
	"unicode/utf8"

	pkgerrors "ContactBook/pkg/errors"
)

// ========== Auth 相关 DTO ==========

// RegisterUserRequest 注册请求
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r RegisterUserRequest) Validate() error {
	fields := map[string]string{}

	checkRequired(fields, "username", r.Username, 100)
	checkPassword(fields, r.Password, true)
	checkRequired(fields, "name", r.Name, 100)

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

// LoginUserRequest 登录请求
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginUserRequest) Validate() error {
	fields := map[string]string{}

	checkRequired(fields, "username", r.Username, 100)
	checkPassword(fields, r.Password, true)

	if len(fields) > 0 {
		return pkgerrors.Validation(fields)
	}
	return nil
}

// RefreshTokenRequest 换发 token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshTokenRequest) Validate() error {
	if r.RefreshToken == "" {
		return pkgerrors.Validation(map[string]string{"refresh_token": "is required"})
	}
	return nil
}

// TokenResponse 登录/刷新成功后的令牌对
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

func checkPassword(fields map[string]string, password string, required bool) {
	if password == "" {
		if required {
			fields["password"] = "is required"
		}
		return
	}
	if utf8.RuneCountInString(password) < 6 {
		fields["password"] = "is too short"
		return
	}
	if utf8.RuneCountInString(password) > 100 {
		fields["password"] = "is too long"
	}
}

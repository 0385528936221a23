// Package errors 定义业务错误的构造函数，统一由 pkg/response 翻译成 HTTP 响应。
package errors

import (
	"net/http"

	scgerror "github.com/next-trace/scg-error/error"
)

// 错误分类 key，response 层按 key 决定响应形态
const (
	KeyValidation   = "validation"
	KeyNotFound     = "not_found"
	KeyUnauthorized = "unauthorized"
	KeyConflict     = "conflict"
)

// 校验错误的字段明细存放在 Context 的这个键下，只进日志不上线路
const FieldsContextKey = "fields"

// ContactNotFound 联系人不存在，或属于其他用户。
// 两种情况对外不可区分，消息固定。
func ContactNotFound() *scgerror.Error {
	return scgerror.New(http.StatusNotFound, "contact.not_found", KeyNotFound, "Contact is not found", nil)
}

// UserNotFound 当前认证用户在库中不存在（token 有效但用户已被删除等）。
func UserNotFound() *scgerror.Error {
	return scgerror.New(http.StatusNotFound, "user.not_found", KeyNotFound, "User is not found", nil)
}

// Validation 输入未通过 schema 校验。fields 为字段名到错误描述的映射。
func Validation(fields map[string]string) *scgerror.Error {
	e := scgerror.New(http.StatusBadRequest, "request.invalid", KeyValidation, "Validation Error", nil)
	if len(fields) > 0 {
		e.WithContextKV(FieldsContextKey, fields)
	}
	return e
}

// UsernameTaken 注册时用户名已存在。
func UsernameTaken() *scgerror.Error {
	return scgerror.New(http.StatusBadRequest, "user.duplicate", KeyConflict, "Username already registered", nil)
}

// WrongCredentials 登录用户名或密码错误，不区分哪个错。
func WrongCredentials() *scgerror.Error {
	return scgerror.New(http.StatusUnauthorized, "auth.wrong_credentials", KeyUnauthorized, "Username or password is wrong", nil)
}

// InvalidToken refresh token 无效、过期或已登出。
func InvalidToken() *scgerror.Error {
	return scgerror.New(http.StatusUnauthorized, "auth.invalid_token", KeyUnauthorized, "Token is invalid", nil)
}

// Unauthorized 请求缺少有效身份。
func Unauthorized() *scgerror.Error {
	return scgerror.New(http.StatusUnauthorized, "auth.unauthorized", KeyUnauthorized, "Unauthorized", nil)
}

// TooManyRequests 触发限流。
func TooManyRequests() *scgerror.Error {
	return scgerror.New(http.StatusTooManyRequests, "rate.limited", "rate_limited", "Too many requests", nil)
}

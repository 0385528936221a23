// Package response 是所有失败的唯一出口：任何 handler 冒泡上来的 error
// 都在这里被翻译成统一的 JSON 信封，成功响应也从这里出去。
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	scgerror "github.com/next-trace/scg-error/error"
	"go.uber.org/zap"

	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/logger"
)

// Paging 列表接口的分页元数据
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// WebResponse 统一的成功响应信封
type WebResponse struct {
	Data   interface{} `json:"data"`
	Paging *Paging     `json:"paging,omitempty"`
}

// ErrorEnvelope 统一的错误响应信封，errors 可以是字符串或结构体
type ErrorEnvelope struct {
	Errors interface{} `json:"errors"`
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, WebResponse{Data: data})
}

func SuccessWithPaging(ctx context.Context, c *app.RequestContext, data interface{}, paging Paging) {
	c.JSON(http.StatusOK, WebResponse{Data: data, Paging: &paging})
}

// Error 错误翻译层。三种形态：
//   - 携带状态码的业务错误，按其状态码原样输出 detail
//   - 校验错误，固定 400 + "Validation Error"，字段明细只进日志
//   - 其余一律 500，消息原样透出
func Error(ctx context.Context, c *app.RequestContext, err error) {
	var appErr *scgerror.Error
	if errors.As(err, &appErr) {
		if appErr.Key() == pkgerrors.KeyValidation {
			logWarn(c, "Request validation failed",
				zap.Any(pkgerrors.FieldsContextKey, appErr.Context()[pkgerrors.FieldsContextKey]),
			)
			c.JSON(http.StatusBadRequest, ErrorEnvelope{Errors: appErr.Detail()})
			return
		}

		c.JSON(appErr.HTTPStatus(), ErrorEnvelope{Errors: appErr.Detail()})
		return
	}

	logError(c, "Unhandled error reached response boundary", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Errors: err.Error()})
}

// BindError 请求体解码失败，等同校验失败
func BindError(ctx context.Context, c *app.RequestContext, err error) {
	logWarn(c, "Request bind failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Errors: "Validation Error"})
}

func logWarn(c *app.RequestContext, msg string, fields ...zap.Field) {
	if logger.Logger == nil {
		return
	}
	logger.Logger.Warn(msg, append(requestFields(c), fields...)...)
}

func logError(c *app.RequestContext, msg string, fields ...zap.Field) {
	if logger.Logger == nil {
		return
	}
	logger.Logger.Error(msg, append(requestFields(c), fields...)...)
}

func requestFields(c *app.RequestContext) []zap.Field {
	return []zap.Field{
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("request_id", string(c.Response.Header.Get("X-Request-ID"))),
	}
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"ContactBook/config"
	"ContactBook/pkg/logger"
	"ContactBook/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，统一落到错误信封。
// 生产环境不透出 panic 详情。
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	logger.Logger.Error("[PANIC RECOVERED]",
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", string(c.Response.Header.Get("X-Request-ID"))),
		zap.ByteString("stack", debug.Stack()),
	)

	message := "Internal Server Error"
	if !config.Cfg.IsProduction() {
		message = fmt.Sprintf("panic: %v", err)
	}

	c.Abort()
	c.JSON(http.StatusInternalServerError, response.ErrorEnvelope{Errors: message})
}

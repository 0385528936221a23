package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware 透传或生成请求 ID，日志和响应头都带上
func RequestIDMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.Request.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Response.Header.Set(requestIDHeader, requestID)
		c.Next(ctx)
	}
}

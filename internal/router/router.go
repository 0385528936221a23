package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"ContactBook/internal/handler"
	"ContactBook/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
		auth.DELETE("/logout", middleware.AuthMiddleware(), handler.Logout)
	}

	// 用户相关路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware()) // 需要鉴权的路由组
	{
		users.GET("/me", handler.GetMe)
		users.PATCH("/me", handler.UpdateMe)
	}

	// 联系人路由
	contacts := v1.Group("/contacts")
	contacts.Use(middleware.AuthMiddleware())
	contacts.Use(middleware.GeneralRateLimitMiddleware())
	{
		contacts.POST("", handler.CreateContact)
		contacts.GET("", handler.SearchContacts)
		contacts.GET("/:contact_id", handler.GetContact)
		contacts.PATCH("/:contact_id", handler.UpdateContact)
		contacts.DELETE("/:contact_id", handler.DeleteContact)
	}
}

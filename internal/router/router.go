// Package router 提供 HTTP 路由注册，按模块拆分到各个文件
package router

import (
	"kama_card_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 持有 Handler 聚合，各模块通过 RegisterXRoutes 注册
type Router struct {
	handlers       *handler.Handlers
	maxImportBytes int64
}

func NewRouter(handlers *handler.Handlers, maxImportBytes int64) *Router {
	return &Router{handlers: handlers, maxImportBytes: maxImportBytes}
}

// RegisterRoutes 在 https_server.Init() 中调用
func (r *Router) RegisterRoutes(engine *gin.Engine) {
	r.RegisterUserRoutes(engine.Group("/user"))
	r.RegisterCardRoutes(engine.Group("/card"))
	r.RegisterShareRoutes(engine.Group("/share"))
	r.RegisterConnectionRoutes(engine.Group("/connection"))
}

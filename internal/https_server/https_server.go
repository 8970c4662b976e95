// Package https_server 创建 Gin 引擎并配置中间件和路由
package https_server

import (
	"kama_card_server/internal/config"
	"kama_card_server/internal/handler"
	"kama_card_server/internal/infrastructure/logger"
	"kama_card_server/internal/infrastructure/middleware"
	"kama_card_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 返回配置完成的 Gin 引擎
// 顺序：日志与恢复 → CORS → TLS/安全头 → 业务路由
func Init(handlers *handler.Handlers, cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	engine.Use(cors.New(corsConfig))

	if cfg.MainConfig.TLS {
		engine.Use(middleware.TlsHandler(cfg.MainConfig.Host, cfg.MainConfig.Port))
	} else {
		engine.Use(middleware.SecureHeaders())
	}

	rt := router.NewRouter(handlers, cfg.VcardConfig.MaxImportBytes)
	rt.RegisterRoutes(engine)

	return engine
}

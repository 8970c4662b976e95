package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kama_card_server/internal/config"
	dao "kama_card_server/internal/dao/mysql"
	myredis "kama_card_server/internal/dao/redis"
	"kama_card_server/internal/handler"
	"kama_card_server/internal/https_server"
	"kama_card_server/internal/infrastructure/logger"
	"kama_card_server/internal/infrastructure/mq"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/constants"
	"kama_card_server/pkg/util/snowflake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("c", "", "config file path")
	flag.Parse()

	// 1. 加载配置
	conf := config.GetConfig()
	if *configPath != "" {
		var err error
		if conf, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("load config failed: %v", err)
		}
	}
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()

	// 3. 数据库
	dao.Init()
	zap.L().Info("数据库初始化成功", zap.String("driver", conf.MysqlConfig.Driver))

	// 4. Redis 缓存
	cache := myredis.Init()
	// 缓存的 vCard 文本依赖 foldLines 等配置，启动时清空
	cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.REDIS_TIMEOUT*time.Second)
		defer cancel()
		if err := cache.DeleteByPattern(ctx, myredis.VcardPattern()); err != nil {
			zap.L().Warn("清空名片缓存失败", zap.Error(err))
		}
	})
	zap.L().Info("Redis 初始化成功")

	// 5. 批次号与名片事件
	snowflake.Init(conf.SnowflakeConfig.MachineID)
	broker := mq.NewBroker(conf.KafkaConfig)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go broker.Start(ctx, mq.LogEvent)
	zap.L().Info("名片事件初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 6. Service 与 Handler（依赖注入）
	service.InitServices(dao.Repos, cache, broker, conf)
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}
	engine := https_server.Init(handler.NewHandlers(service.Svc), conf)

	// 7. 启动服务
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		var err error
		if conf.MainConfig.TLS {
			err = srv.ListenAndServeTLS(conf.MainConfig.CertFile, conf.MainConfig.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务已启动", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
	broker.Close()
	cancel()
	zap.L().Info("服务器已关闭")
}

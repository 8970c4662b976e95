// Package redis 缓存导出后的 vCard 文本，底层为 github.com/redis/go-redis/v9
package redis

import (
	"context"
	"strconv"
	"time"

	"kama_card_server/internal/config"
	"kama_card_server/pkg/constants"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Init 按配置创建客户端，连接失败只记录日志，缓存读写各自返回错误
func Init() AsyncCacheService {
	conf := config.GetConfig().RedisConfig
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Host + ":" + strconv.Itoa(conf.Port),
		Password:     conf.Password,
		DB:           conf.Db,
		PoolSize:     20,
		MinIdleConns: constants.CACHE_WORKER_COUNT,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.REDIS_TIMEOUT*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis ping failed", zap.String("addr", conf.Host), zap.Error(err))
	}

	return NewRedisCache(client, constants.CACHE_WORKER_COUNT, constants.CACHE_TASK_QUEUE)
}

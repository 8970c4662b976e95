// Package service 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"kama_card_server/internal/config"
	"kama_card_server/internal/dao/mysql/repository"
	myredis "kama_card_server/internal/dao/redis"
	"kama_card_server/internal/infrastructure/mq"
	"kama_card_server/internal/service/card"
	"kama_card_server/internal/service/connection"
	"kama_card_server/internal/service/content"
	"kama_card_server/internal/service/user"
	"kama_card_server/internal/service/vcf"
)

// Services 聚合所有 Service 实例，Handler 层通过它访问各个 Service
type Services struct {
	User       UserService
	Card       CardService
	Vcf        VcfService
	Connection ConnectionService
	Content    ContentService
}

// NewServices 创建并注入所有 Service 实例，cache 与 broker 可以为 nil
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, broker mq.EventBroker, cfg *config.Config) *Services {
	cardSvc := card.NewCardService(repos, cache)
	return &Services{
		User:       user.NewUserService(repos),
		Card:       cardSvc,
		Vcf:        vcf.NewVcfService(repos, cardSvc, cache, broker, vcf.OptionsFromConfig(cfg)),
		Connection: connection.NewConnectionService(repos, broker),
		Content:    content.NewContentService(repos),
	}
}

// Svc 全局 Services 实例
var Svc *Services

// InitServices 应在 main.go 中 Repository、缓存和消息代理初始化之后调用
func InitServices(repos *repository.Repositories, cache myredis.AsyncCacheService, broker mq.EventBroker, cfg *config.Config) {
	Svc = NewServices(repos, cache, broker, cfg)
}

// Package handler 提供 HTTP 请求处理器，通过构造函数注入 Service 依赖
package handler

import (
	"kama_card_server/internal/service"
)

// Handlers 聚合所有 Handler 实例，Router 层通过此结构访问各个 Handler
type Handlers struct {
	User       *UserHandler
	Card       *CardHandler
	Vcf        *VcfHandler
	Connection *ConnectionHandler
	Content    *ContentHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Card:       NewCardHandler(svc.Card),
		Vcf:        NewVcfHandler(svc.Vcf),
		Connection: NewConnectionHandler(svc.Connection),
		Content:    NewContentHandler(svc.Content),
	}
}

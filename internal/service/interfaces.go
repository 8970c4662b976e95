// Package service 定义业务层接口，供 Handler 层调用
package service

import (
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
)

// UserService 名片拥有者
type UserService interface {
	// CreateUser 创建用户并生成默认名片
	CreateUser(req request.CreateUserRequest) (*respond.UserInfoRespond, error)
	GetUserInfo(uuid string) (*respond.UserInfoRespond, error)
}

// CardService 名片增删改查
type CardService interface {
	CreateCard(req request.CreateCardRequest) (*respond.CardRespond, error)
	// UpdateCard 整体替换名片内容
	UpdateCard(req request.UpdateCardRequest) (*respond.CardRespond, error)
	GetCardInfo(cardId string) (*respond.CardRespond, error)
	// GetCardList 通讯录分页
	GetCardList(req request.CardListRequest) (*respond.CardListRespond, error)
	DeleteCard(ownerId, cardId string) error
}

// VcfService vCard 导入导出与分享
type VcfService interface {
	// ImportVcard 部分成功时同时返回报告和 CodeImportPartial
	ImportVcard(req request.ImportVcfRequest) (*respond.ImportRespond, error)
	ExportVcard(cardId string) (*respond.VcfFile, error)
	ShareCard(req request.OwnerCardRequest) (*respond.ShareRespond, error)
	GetSharedCard(token, viewerId string) (*respond.SharedCardRespond, error)
	ExportSharedVcard(token string) (*respond.VcfFile, error)
	// SharedQR 返回 PNG
	SharedQR(token string, size int) ([]byte, error)
}

// ConnectionService 通过分享链接建立的联系
type ConnectionService interface {
	// Connect 已存在时同时返回该联系和 CodeConnectionExist
	Connect(req request.ConnectRequest) (*respond.ConnectionRespond, error)
	GetConnectionList(ownerId string) ([]respond.ConnectionRespond, error)
	GetConnectionInfo(ownerId, connectionId string) (*respond.ConnectionInfoRespond, error)
	DeleteConnection(ownerId, connectionId string) error
}

// ContentService 名片展示内容
type ContentService interface {
	AddContent(req request.AddContentRequest) (*respond.ContentItemRespond, error)
	GetContentList(cardId string) ([]respond.ContentItemRespond, error)
	OrderContents(req request.OrderContentRequest) error
	DeleteContent(ownerId string, contentId uint) error
}

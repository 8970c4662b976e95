// Package repository 定义数据访问接口与聚合结构，具体实现在各自文件中
package repository

import (
	"kama_card_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 名片拥有者
type UserRepository interface {
	FindByUuid(uuid string) (*model.UserInfo, error)
	Create(user *model.UserInfo) error
	Update(user *model.UserInfo) error
}

// CardRepository 名片主表
type CardRepository interface {
	FindById(id uint) (*model.ContactCard, error)
	FindByUuid(uuid string) (*model.ContactCard, error)
	FindByShareToken(token string) (*model.ContactCard, error)
	FindByUuids(uuids []string) ([]model.ContactCard, error)
	// FindPageByOwnerId 按创建顺序分页，同时返回总数
	FindPageByOwnerId(ownerId string, offset, limit int) ([]model.ContactCard, int64, error)
	CountByOwnerId(ownerId string) (int64, error)
	Create(card *model.ContactCard) error
	Update(card *model.ContactCard) error
	UpdateShareToken(uuid, token string) error
	SoftDeleteByUuid(uuid string) error
}

// CardChildRepository 名片的六类子集合
type CardChildRepository interface {
	// FindByCardId 各集合按 id 升序返回
	FindByCardId(cardId uint) (*model.CardChildren, error)
	// CreateAll 调用方需先 SetCardId
	CreateAll(children *model.CardChildren) error
	DeleteByCardId(cardId uint) error
}

// ContentRepository 名片展示内容
type ContentRepository interface {
	FindById(id uint) (*model.CardContent, error)
	FindByCardId(cardId uint) ([]model.CardContent, error)
	MaxSortOrder(cardId uint) (int, error)
	Create(content *model.CardContent) error
	UpdateSortOrder(id uint, order int) error
	Delete(id uint) error
	DeleteByCardId(cardId uint) error
}

// ConnectionRepository 用户之间的联系
type ConnectionRepository interface {
	FindByUuid(uuid string) (*model.Connection, error)
	FindByOwnerAndCard(ownerId, cardId string) (*model.Connection, error)
	FindByOwnerId(ownerId string) ([]model.Connection, error)
	Create(conn *model.Connection) error
	SoftDeleteByUuid(uuid string) error
	SoftDeleteByCardId(cardId string) error
}

// Repositories 聚合所有 Repository，作为依赖注入入口
type Repositories struct {
	db         *gorm.DB
	User       UserRepository
	Card       CardRepository
	CardChild  CardChildRepository
	Content    ContentRepository
	Connection ConnectionRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		User:       NewUserRepository(db),
		Card:       NewCardRepository(db),
		CardChild:  NewCardChildRepository(db),
		Content:    NewContentRepository(db),
		Connection: NewConnectionRepository(db),
	}
}

// Transaction fn 内使用 txRepos 的操作要么全部成功，要么全部回滚
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

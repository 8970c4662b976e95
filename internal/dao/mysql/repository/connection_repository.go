package repository

import (
	"kama_card_server/internal/model"

	"gorm.io/gorm"
)

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) FindByUuid(uuid string) (*model.Connection, error) {
	var conn model.Connection
	if err := r.db.First(&conn, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系 uuid=%s", uuid)
	}
	return &conn, nil
}

func (r *connectionRepository) FindByOwnerAndCard(ownerId, cardId string) (*model.Connection, error) {
	var conn model.Connection
	if err := r.db.First(&conn, "owner_id = ? AND card_id = ?", ownerId, cardId).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系 owner_id=%s card_id=%s", ownerId, cardId)
	}
	return &conn, nil
}

func (r *connectionRepository) FindByOwnerId(ownerId string) ([]model.Connection, error) {
	var conns []model.Connection
	if err := r.db.Where("owner_id = ?", ownerId).Order("created_at DESC").Find(&conns).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系列表 owner_id=%s", ownerId)
	}
	return conns, nil
}

func (r *connectionRepository) Create(conn *model.Connection) error {
	if err := r.db.Create(conn).Error; err != nil {
		return wrapDBError(err, "创建联系")
	}
	return nil
}

func (r *connectionRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Connection{}).Error; err != nil {
		return wrapDBErrorf(err, "删除联系 uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByCardId 名片被删除时清理指向它的联系
func (r *connectionRepository) SoftDeleteByCardId(cardId string) error {
	if err := r.db.Where("card_id = ?", cardId).Delete(&model.Connection{}).Error; err != nil {
		return wrapDBErrorf(err, "删除联系 card_id=%s", cardId)
	}
	return nil
}

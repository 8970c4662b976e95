package repository

import (
	"kama_card_server/internal/model"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) FindById(id uint) (*model.ContactCard, error) {
	var card model.ContactCard
	if err := r.db.First(&card, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询名片 id=%d", id)
	}
	return &card, nil
}

func (r *cardRepository) FindByUuid(uuid string) (*model.ContactCard, error) {
	var card model.ContactCard
	if err := r.db.First(&card, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询名片 uuid=%s", uuid)
	}
	return &card, nil
}

func (r *cardRepository) FindByShareToken(token string) (*model.ContactCard, error) {
	var card model.ContactCard
	// 未分享的名片 share_token 为空串
	if token == "" {
		return nil, wrapDBErrorf(gorm.ErrRecordNotFound, "查询分享名片 token=%s", token)
	}
	if err := r.db.First(&card, "share_token = ?", token).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询分享名片 token=%s", token)
	}
	return &card, nil
}

func (r *cardRepository) FindByUuids(uuids []string) ([]model.ContactCard, error) {
	var cards []model.ContactCard
	if len(uuids) == 0 {
		return cards, nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Find(&cards).Error; err != nil {
		return nil, wrapDBError(err, "批量查询名片")
	}
	return cards, nil
}

func (r *cardRepository) FindPageByOwnerId(ownerId string, offset, limit int) ([]model.ContactCard, int64, error) {
	var (
		cards []model.ContactCard
		total int64
	)
	q := r.db.Model(&model.ContactCard{}).Where("owner_id = ?", ownerId)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计名片 owner_id=%s", ownerId)
	}
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&cards).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询名片 owner_id=%s", ownerId)
	}
	return cards, total, nil
}

func (r *cardRepository) CountByOwnerId(ownerId string) (int64, error) {
	var total int64
	if err := r.db.Model(&model.ContactCard{}).Where("owner_id = ?", ownerId).Count(&total).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计名片 owner_id=%s", ownerId)
	}
	return total, nil
}

func (r *cardRepository) Create(card *model.ContactCard) error {
	if err := r.db.Create(card).Error; err != nil {
		return wrapDBError(err, "创建名片")
	}
	return nil
}

func (r *cardRepository) Update(card *model.ContactCard) error {
	if err := r.db.Save(card).Error; err != nil {
		return wrapDBErrorf(err, "更新名片 uuid=%s", card.Uuid)
	}
	return nil
}

func (r *cardRepository) UpdateShareToken(uuid, token string) error {
	if err := r.db.Model(&model.ContactCard{}).Where("uuid = ?", uuid).Update("share_token", token).Error; err != nil {
		return wrapDBErrorf(err, "更新分享链接 uuid=%s", uuid)
	}
	return nil
}

func (r *cardRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.ContactCard{}).Error; err != nil {
		return wrapDBErrorf(err, "删除名片 uuid=%s", uuid)
	}
	return nil
}

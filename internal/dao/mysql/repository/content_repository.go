package repository

import (
	"kama_card_server/internal/model"

	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) FindById(id uint) (*model.CardContent, error) {
	var content model.CardContent
	if err := r.db.First(&content, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询展示内容 id=%d", id)
	}
	return &content, nil
}

func (r *contentRepository) FindByCardId(cardId uint) ([]model.CardContent, error) {
	var contents []model.CardContent
	if err := r.db.Where("card_id = ?", cardId).Order("sort_order ASC, id ASC").Find(&contents).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询展示内容 card_id=%d", cardId)
	}
	return contents, nil
}

func (r *contentRepository) MaxSortOrder(cardId uint) (int, error) {
	var last *int
	if err := r.db.Model(&model.CardContent{}).Where("card_id = ?", cardId).
		Select("MAX(sort_order)").Scan(&last).Error; err != nil {
		return 0, wrapDBErrorf(err, "查询展示顺序 card_id=%d", cardId)
	}
	if last == nil {
		return -1, nil
	}
	return *last, nil
}

func (r *contentRepository) Create(content *model.CardContent) error {
	if err := r.db.Create(content).Error; err != nil {
		return wrapDBError(err, "创建展示内容")
	}
	return nil
}

func (r *contentRepository) UpdateSortOrder(id uint, order int) error {
	if err := r.db.Model(&model.CardContent{}).Where("id = ?", id).Update("sort_order", order).Error; err != nil {
		return wrapDBErrorf(err, "更新展示顺序 id=%d", id)
	}
	return nil
}

func (r *contentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.CardContent{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除展示内容 id=%d", id)
	}
	return nil
}

func (r *contentRepository) DeleteByCardId(cardId uint) error {
	if err := r.db.Where("card_id = ?", cardId).Delete(&model.CardContent{}).Error; err != nil {
		return wrapDBErrorf(err, "删除展示内容 card_id=%d", cardId)
	}
	return nil
}

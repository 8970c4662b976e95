package repository

import (
	"kama_card_server/internal/model"

	"gorm.io/gorm"
)

type cardChildRepository struct {
	db *gorm.DB
}

func NewCardChildRepository(db *gorm.DB) CardChildRepository {
	return &cardChildRepository{db: db}
}

func (r *cardChildRepository) FindByCardId(cardId uint) (*model.CardChildren, error) {
	var c model.CardChildren
	finds := []struct {
		dest any
		name string
	}{
		{&c.Addresses, "地址"},
		{&c.Phones, "电话"},
		{&c.Emails, "邮箱"},
		{&c.OrgProperties, "职务/组织"},
		{&c.Tags, "标签"},
		{&c.Urls, "链接"},
	}
	for _, f := range finds {
		if err := r.db.Where("card_id = ?", cardId).Order("id ASC").Find(f.dest).Error; err != nil {
			return nil, wrapDBErrorf(err, "查询名片%s card_id=%d", f.name, cardId)
		}
	}
	return &c, nil
}

// CreateAll 空集合跳过，gorm 不接受空切片
func (r *cardChildRepository) CreateAll(c *model.CardChildren) error {
	creates := []struct {
		n    int
		rows any
	}{
		{len(c.Addresses), &c.Addresses},
		{len(c.Phones), &c.Phones},
		{len(c.Emails), &c.Emails},
		{len(c.OrgProperties), &c.OrgProperties},
		{len(c.Tags), &c.Tags},
		{len(c.Urls), &c.Urls},
	}
	for _, cr := range creates {
		if cr.n == 0 {
			continue
		}
		if err := r.db.Create(cr.rows).Error; err != nil {
			return wrapDBError(err, "写入名片子记录")
		}
	}
	return nil
}

func (r *cardChildRepository) DeleteByCardId(cardId uint) error {
	for _, m := range []any{
		&model.CardAddress{}, &model.CardPhone{}, &model.CardEmail{},
		&model.CardOrgProperty{}, &model.CardTag{}, &model.CardUrl{},
	} {
		if err := r.db.Where("card_id = ?", cardId).Delete(m).Error; err != nil {
			return wrapDBErrorf(err, "删除名片子记录 card_id=%d", cardId)
		}
	}
	return nil
}

package model

import "gorm.io/gorm"

// 名片展示内容可引用的子记录种类
const (
	ContentAddress     = "address"
	ContentPhone       = "phone"
	ContentEmail       = "email"
	ContentUrl         = "url"
	ContentTag         = "tag"
	ContentOrgProperty = "org_property"
)

// CardContent 名片上展示的一条子记录，ItemKind + ItemId 指向具体子表
type CardContent struct {
	gorm.Model
	CardId    uint   `gorm:"column:card_id;index;not null"`
	ItemKind  string `gorm:"column:item_kind;type:varchar(16);not null"`
	ItemId    uint   `gorm:"column:item_id;not null"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0"`
}

func (CardContent) TableName() string {
	return "card_content"
}

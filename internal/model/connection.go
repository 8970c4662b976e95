package model

import "gorm.io/gorm"

// Connection 用户通过分享链接与他人名片建立的联系
type Connection struct {
	gorm.Model
	Uuid    string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:联系唯一id"`
	OwnerId string `gorm:"column:owner_id;index;type:char(20);not null;comment:发起方用户"`
	CardId  string `gorm:"column:card_id;index;type:char(20);not null;comment:对方名片uuid"`
	// Status 0=正常, 1=已删除
	Status int8 `gorm:"column:status;not null;default:0"`
}

func (Connection) TableName() string {
	return "connection"
}

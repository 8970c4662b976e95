// Package model 定义数据库实体模型
package model

import "gorm.io/gorm"

// UserInfo 名片的拥有者，对应 user_info 表
type UserInfo struct {
	gorm.Model
	// Uuid 格式：U + 日期随机串
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`
	Nickname string `gorm:"column:nickname;type:varchar(50);not null;comment:昵称"`
	Email    string `gorm:"column:email;type:varchar(100);comment:邮箱"`
	// Status 0=正常, 1=禁用
	Status int8 `gorm:"column:status;index;not null;default:0;comment:状态，0.正常，1.禁用"`
}

func (UserInfo) TableName() string {
	return "user_info"
}

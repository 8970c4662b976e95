package model

import "gorm.io/gorm"

// ContactCard 一张联系人名片，对应 vcard.ContactRecord
// 日期的年份为 0 表示未知（yearless）
type ContactCard struct {
	gorm.Model
	Uuid    string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:名片唯一id"`
	OwnerId string `gorm:"column:owner_id;index;type:char(20);not null;comment:所属用户"`
	Title   string `gorm:"column:title;type:varchar(50);comment:本地标签，如 Personal"`

	Kind       string `gorm:"column:kind;type:varchar(16);not null;default:individual;comment:individual/group/org/location"`
	Prefix     string `gorm:"column:prefix;type:varchar(50)"`
	FirstName  string `gorm:"column:first_name;type:varchar(50)"`
	MiddleName string `gorm:"column:middle_name;type:varchar(50)"`
	LastName   string `gorm:"column:last_name;type:varchar(50);comment:非个人名片时作为唯一显示名"`
	Suffix     string `gorm:"column:suffix;type:varchar(50)"`
	Nickname   string `gorm:"column:nickname;type:varchar(50)"`

	BirthdayMonth    int8 `gorm:"column:birthday_month"`
	BirthdayDay      int8 `gorm:"column:birthday_day"`
	BirthdayYear     int  `gorm:"column:birthday_year"`
	AnniversaryMonth int8 `gorm:"column:anniversary_month"`
	AnniversaryDay   int8 `gorm:"column:anniversary_day"`
	AnniversaryYear  int  `gorm:"column:anniversary_year"`

	Sex    string `gorm:"column:sex;type:char(1)"`
	Gender string `gorm:"column:gender;type:varchar(50)"`
	Note   string `gorm:"column:note;type:text"`

	// ShareToken 分享链接，首次分享时生成
	ShareToken string `gorm:"column:share_token;index;type:char(36)"`
	// ImportBatch 通过导入创建时的批次号
	ImportBatch string `gorm:"column:import_batch;index;type:varchar(24)"`
}

func (ContactCard) TableName() string {
	return "contact_card"
}

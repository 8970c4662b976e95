package model

import "gorm.io/gorm"

// 以下子表都通过 CardId 归属于一张 ContactCard，按 id 升序即存储顺序

type CardAddress struct {
	gorm.Model
	CardId   uint   `gorm:"column:card_id;index;not null"`
	InfoType string `gorm:"column:info_type;type:varchar(8);comment:work/home/other"`
	Street1  string `gorm:"column:street1;type:varchar(255);not null"`
	Street2  string `gorm:"column:street2;type:varchar(255)"`
	City     string `gorm:"column:city;type:varchar(100)"`
	State    string `gorm:"column:state;type:varchar(100)"`
	Zip      string `gorm:"column:zip;type:varchar(20)"`
	Country  string `gorm:"column:country;type:varchar(100)"`
}

func (CardAddress) TableName() string { return "card_address" }

type CardPhone struct {
	gorm.Model
	CardId    uint   `gorm:"column:card_id;index;not null"`
	PhoneType string `gorm:"column:phone_type;type:varchar(8);comment:cell/work/home/voice/text/fax/pager/other"`
	Number    string `gorm:"column:number;type:varchar(50);not null"`
}

func (CardPhone) TableName() string { return "card_phone" }

type CardEmail struct {
	gorm.Model
	CardId   uint   `gorm:"column:card_id;index;not null"`
	InfoType string `gorm:"column:info_type;type:varchar(8)"`
	Address  string `gorm:"column:address;type:varchar(255);not null"`
}

func (CardEmail) TableName() string { return "card_email" }

// CardOrgProperty TITLE/ROLE/ORG 共用一张表，PropertyKind 区分
type CardOrgProperty struct {
	gorm.Model
	CardId       uint   `gorm:"column:card_id;index;not null"`
	PropertyKind string `gorm:"column:property_kind;type:varchar(8);index;not null;comment:title/role/org"`
	Value        string `gorm:"column:value;type:varchar(255);not null"`
}

func (CardOrgProperty) TableName() string { return "card_org_property" }

type CardTag struct {
	gorm.Model
	CardId uint   `gorm:"column:card_id;index;not null"`
	Label  string `gorm:"column:label;type:varchar(200);not null"`
}

func (CardTag) TableName() string { return "card_tag" }

type CardUrl struct {
	gorm.Model
	CardId   uint   `gorm:"column:card_id;index;not null"`
	InfoType string `gorm:"column:info_type;type:varchar(8)"`
	Url      string `gorm:"column:url;type:varchar(500);not null"`
	Label    string `gorm:"column:label;type:varchar(50)"`
}

func (CardUrl) TableName() string { return "card_url" }

// CardChildren 一张名片的全部子集合，不对应数据表
type CardChildren struct {
	Addresses     []CardAddress
	Phones        []CardPhone
	Emails        []CardEmail
	OrgProperties []CardOrgProperty
	Tags          []CardTag
	Urls          []CardUrl
}

// SetCardId 插入前为每条子记录设置外键
func (c *CardChildren) SetCardId(cardId uint) {
	for i := range c.Addresses {
		c.Addresses[i].CardId = cardId
	}
	for i := range c.Phones {
		c.Phones[i].CardId = cardId
	}
	for i := range c.Emails {
		c.Emails[i].CardId = cardId
	}
	for i := range c.OrgProperties {
		c.OrgProperties[i].CardId = cardId
	}
	for i := range c.Tags {
		c.Tags[i].CardId = cardId
	}
	for i := range c.Urls {
		c.Urls[i].CardId = cardId
	}
}

// Package request 定义 HTTP 请求体与查询参数
package request

// DateRequest 月日为 0 表示未设置，Year 为 0 表示年份未知
type DateRequest struct {
	Month int `json:"month" binding:"omitempty,min=1,max=12"`
	Day   int `json:"day" binding:"omitempty,min=1,max=31"`
	Year  int `json:"year" binding:"omitempty,min=1,max=9999"`
}

type AddressRequest struct {
	Type    string `json:"type" binding:"omitempty,oneof=work home other"`
	Street1 string `json:"street1" binding:"required,max=255"`
	Street2 string `json:"street2" binding:"max=255"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	Zip     string `json:"zip" binding:"max=20"`
	Country string `json:"country" binding:"max=100"`
}

type PhoneRequest struct {
	Type   string `json:"type" binding:"omitempty,oneof=cell work home voice text fax pager other"`
	Number string `json:"number" binding:"required,max=50"`
}

type EmailRequest struct {
	Type    string `json:"type" binding:"omitempty,oneof=work home other"`
	Address string `json:"address" binding:"required,email,max=255"`
}

type OrgPropertyRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=title role org"`
	Value string `json:"value" binding:"required,max=255"`
}

type TagRequest struct {
	Label string `json:"label" binding:"required,max=200"`
}

type UrlRequest struct {
	Type  string `json:"type" binding:"omitempty,oneof=work home other"`
	Url   string `json:"url" binding:"required,max=500"`
	Label string `json:"label" binding:"max=50"`
}

// CardBody 名片的全部可编辑内容，创建与更新共用
type CardBody struct {
	Title    string `json:"title" binding:"max=50"`
	Kind     string `json:"kind" binding:"omitempty,oneof=individual group org location"`
	Prefix   string `json:"prefix" binding:"max=50"`
	First    string `json:"first" binding:"max=50"`
	Middle   string `json:"middle" binding:"max=50"`
	Last     string `json:"last" binding:"max=50"`
	Suffix   string `json:"suffix" binding:"max=50"`
	Nickname string `json:"nickname" binding:"max=50"`

	Birthday    DateRequest `json:"birthday"`
	Anniversary DateRequest `json:"anniversary"`

	Sex    string `json:"sex" binding:"omitempty,oneof=M F O N U"`
	Gender string `json:"gender" binding:"max=50"`
	Note   string `json:"note"`

	Addresses     []AddressRequest     `json:"addresses" binding:"omitempty,dive"`
	Phones        []PhoneRequest       `json:"phones" binding:"omitempty,dive"`
	Emails        []EmailRequest       `json:"emails" binding:"omitempty,dive"`
	OrgProperties []OrgPropertyRequest `json:"org_properties" binding:"omitempty,dive"`
	Tags          []TagRequest         `json:"tags" binding:"omitempty,dive"`
	Urls          []UrlRequest         `json:"urls" binding:"omitempty,dive"`
}

type CreateCardRequest struct {
	OwnerId string `json:"owner_id" binding:"required"`
	CardBody
}

type UpdateCardRequest struct {
	OwnerId string `json:"owner_id" binding:"required"`
	CardId  string `json:"card_id" binding:"required"`
	CardBody
}

// OwnerCardRequest 删除、分享等只需要定位名片的操作
type OwnerCardRequest struct {
	OwnerId string `json:"owner_id" binding:"required"`
	CardId  string `json:"card_id" binding:"required"`
}

// CardListRequest 通讯录分页，page 从 1 开始
type CardListRequest struct {
	OwnerId  string `form:"owner_id" binding:"required"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

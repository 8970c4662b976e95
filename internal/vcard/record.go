package vcard

import "time"

// YearlessDate 月日总是已知的日期，年份单独存放
type YearlessDate struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// IsZero 月或日缺失都视为未设置
func (d YearlessDate) IsZero() bool {
	return d.Month == 0 || d.Day == 0
}

// ContactRecord 一条联系人记录（个人、群组、组织或地点）
// 非 individual 时 Last 作为唯一的显示名称
type ContactRecord struct {
	Kind     Kind   `json:"kind"`
	Prefix   string `json:"prefix,omitempty"`
	First    string `json:"first,omitempty"`
	Middle   string `json:"middle,omitempty"`
	Last     string `json:"last,omitempty"`
	Suffix   string `json:"suffix,omitempty"`
	Nickname string `json:"nickname,omitempty"`

	Birthday        YearlessDate `json:"birthday"`
	BirthdayYear    int          `json:"birthday_year,omitempty"` // 0 表示年份未知
	Anniversary     YearlessDate `json:"anniversary"`
	AnniversaryYear int          `json:"anniversary_year,omitempty"`

	Sex    Sex    `json:"sex,omitempty"`
	Gender string `json:"gender,omitempty"`
	Note   string `json:"note,omitempty"`
}

type Address struct {
	Type    InfoType `json:"type,omitempty"`
	Street1 string   `json:"street1"`
	Street2 string   `json:"street2,omitempty"`
	City    string   `json:"city,omitempty"`
	State   string   `json:"state,omitempty"`
	Zip     string   `json:"zip,omitempty"`
	Country string   `json:"country,omitempty"`
}

type Phone struct {
	Type   PhoneType `json:"type,omitempty"`
	Number string    `json:"number"`
}

type Email struct {
	Type    InfoType `json:"type,omitempty"`
	Address string   `json:"address"`
}

// OrgPropertyKind TITLE / ROLE / ORG 三种属性共用一张表，按此字段区分
type OrgPropertyKind string

const (
	OrgPropertyTitle        OrgPropertyKind = "title"
	OrgPropertyRole         OrgPropertyKind = "role"
	OrgPropertyOrganization OrgPropertyKind = "org"
)

type OrgProperty struct {
	Kind  OrgPropertyKind `json:"kind"`
	Value string          `json:"value"`
}

func NewTitle(v string) OrgProperty { return OrgProperty{Kind: OrgPropertyTitle, Value: v} }
func NewRole(v string) OrgProperty  { return OrgProperty{Kind: OrgPropertyRole, Value: v} }
func NewOrg(v string) OrgProperty   { return OrgProperty{Kind: OrgPropertyOrganization, Value: v} }

type Tag struct {
	Label string `json:"label"`
}

// URL Label 保存词表之外的 TYPE 记号，例如 "LinkedIn"
type URL struct {
	Type  InfoType `json:"type,omitempty"`
	URL   string   `json:"url"`
	Label string   `json:"label,omitempty"`
}

// Children 属于同一条记录的全部子集合，各自保持存储顺序
type Children struct {
	Addresses     []Address     `json:"addresses,omitempty"`
	Phones        []Phone       `json:"phones,omitempty"`
	Emails        []Email       `json:"emails,omitempty"`
	OrgProperties []OrgProperty `json:"org_properties,omitempty"`
	Tags          []Tag         `json:"tags,omitempty"`
	URLs          []URL         `json:"urls,omitempty"`
}

// OrgPropertiesOf 按出现顺序筛选某一类 OrgProperty
func (c Children) OrgPropertiesOf(kind OrgPropertyKind) []OrgProperty {
	var out []OrgProperty
	for _, p := range c.OrgProperties {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Bundle 解码得到的一张名片
type Bundle struct {
	Record ContactRecord `json:"record"`
	Children
}

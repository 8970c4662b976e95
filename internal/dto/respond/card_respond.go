package respond

type DateRespond struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Year  int `json:"year,omitempty"`
}

// 子记录带 id，供展示内容引用

type AddressRespond struct {
	Id      uint   `json:"id"`
	Type    string `json:"type"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type PhoneRespond struct {
	Id     uint   `json:"id"`
	Type   string `json:"type"`
	Number string `json:"number"`
}

type EmailRespond struct {
	Id      uint   `json:"id"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

type OrgPropertyRespond struct {
	Id    uint   `json:"id"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type TagRespond struct {
	Id    uint   `json:"id"`
	Label string `json:"label"`
}

type UrlRespond struct {
	Id    uint   `json:"id"`
	Type  string `json:"type"`
	Url   string `json:"url"`
	Label string `json:"label"`
}

type CardRespond struct {
	CardId        string `json:"card_id"`
	OwnerId       string `json:"owner_id"`
	Title         string `json:"title"`
	FormattedName string `json:"formatted_name"`
	Kind          string `json:"kind"`
	Prefix        string `json:"prefix"`
	First         string `json:"first"`
	Middle        string `json:"middle"`
	Last          string `json:"last"`
	Suffix        string `json:"suffix"`
	Nickname      string `json:"nickname"`

	Birthday    *DateRespond `json:"birthday,omitempty"`
	Anniversary *DateRespond `json:"anniversary,omitempty"`

	Sex    string `json:"sex"`
	Gender string `json:"gender"`
	Note   string `json:"note"`

	Addresses     []AddressRespond     `json:"addresses"`
	Phones        []PhoneRespond       `json:"phones"`
	Emails        []EmailRespond       `json:"emails"`
	OrgProperties []OrgPropertyRespond `json:"org_properties"`
	Tags          []TagRespond         `json:"tags"`
	Urls          []UrlRespond         `json:"urls"`

	ImportBatch string `json:"import_batch,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CardBriefRespond 通讯录列表项
type CardBriefRespond struct {
	CardId        string `json:"card_id"`
	Title         string `json:"title"`
	FormattedName string `json:"formatted_name"`
	Kind          string `json:"kind"`
}

type CardListRespond struct {
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Cards    []CardBriefRespond `json:"cards"`
}

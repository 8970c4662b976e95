// Package respond 定义 HTTP 响应中的 data 结构
package respond

type UserInfoRespond struct {
	Uuid          string `json:"uuid"`
	Nickname      string `json:"nickname"`
	Email         string `json:"email"`
	CardCount     int64  `json:"card_count"`
	DefaultCardId string `json:"default_card_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}

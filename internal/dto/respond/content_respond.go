package respond

// ContentItemRespond Item 为对应 ItemKind 的子记录响应结构
type ContentItemRespond struct {
	ContentId uint   `json:"content_id"`
	ItemKind  string `json:"item_kind"`
	ItemId    uint   `json:"item_id"`
	SortOrder int    `json:"sort_order"`
	Item      any    `json:"item"`
}

package request

type AddContentRequest struct {
	OwnerId  string `json:"owner_id" binding:"required"`
	CardId   string `json:"card_id" binding:"required"`
	ItemKind string `json:"item_kind" binding:"required,oneof=address phone email url tag org_property"`
	ItemId   uint   `json:"item_id" binding:"required"`
}

// OrderContentRequest ContentIds 的顺序即新的展示顺序
type OrderContentRequest struct {
	OwnerId    string `json:"owner_id" binding:"required"`
	CardId     string `json:"card_id" binding:"required"`
	ContentIds []uint `json:"content_ids" binding:"required,min=1"`
}

type DeleteContentRequest struct {
	OwnerId   string `json:"owner_id" binding:"required"`
	ContentId uint   `json:"content_id" binding:"required"`
}

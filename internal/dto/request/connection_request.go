package request

type ConnectRequest struct {
	OwnerId    string `json:"owner_id" binding:"required"`
	ShareToken string `json:"share_token" binding:"required"`
}

type ConnectionRequest struct {
	OwnerId      string `json:"owner_id" form:"owner_id" binding:"required"`
	ConnectionId string `json:"connection_id" form:"connection_id" binding:"required"`
}

package respond

type ConnectionRespond struct {
	ConnectionId  string `json:"connection_id"`
	CardId        string `json:"card_id"`
	FormattedName string `json:"formatted_name"`
	CreatedAt     string `json:"created_at"`
}

type ConnectionInfoRespond struct {
	ConnectionId string      `json:"connection_id"`
	CreatedAt    string      `json:"created_at"`
	Card         CardRespond `json:"card"`
}

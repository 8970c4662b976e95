package respond

// ImportRespond 导入报告，FailedIndex 为无法解析的组件序号（从 0 开始）
type ImportRespond struct {
	BatchId     string   `json:"batch_id"`
	Imported    int      `json:"imported"`
	CardIds     []string `json:"card_ids"`
	FailedIndex *int     `json:"failed_index,omitempty"`
	Message     string   `json:"message,omitempty"`
}

type ShareRespond struct {
	Token  string `json:"token"`
	Url    string `json:"url"`
	VcfUrl string `json:"vcf_url"`
	QrUrl  string `json:"qr_url"`
}

// SharedCardRespond ConnectionId 仅在查看者已经建立联系时返回
type SharedCardRespond struct {
	Card         CardRespond `json:"card"`
	ConnectionId string      `json:"connection_id,omitempty"`
}

// VcfFile 下载内容
type VcfFile struct {
	FileName string
	Text     string
}

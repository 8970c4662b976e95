package request

// ImportVcfRequest vcf 为一个或多个 VCARD 组件的原文
type ImportVcfRequest struct {
	OwnerId string `json:"owner_id" binding:"required"`
	Vcf     string `json:"vcf" binding:"required"`
}

type SharedCardQuery struct {
	ViewerId string `form:"viewer_id"`
}

// QRQuery size 为 0 时使用配置的默认尺寸
type QRQuery struct {
	Size int `form:"size" binding:"omitempty,min=21,max=4096"`
}

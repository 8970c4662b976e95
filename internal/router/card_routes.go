package router

import (
	"kama_card_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCardRoutes 名片、导入导出与展示内容
func (r *Router) RegisterCardRoutes(rg *gin.RouterGroup) {
	h := r.handlers.Card
	rg.POST("/create", h.CreateCard)
	rg.POST("/update", h.UpdateCard)
	rg.GET("/info", h.GetCardInfo)
	rg.GET("/list", h.GetCardList)
	rg.POST("/delete", h.DeleteCard)

	vcf := r.handlers.Vcf
	// JSON 包装会让请求体略大于 vcf 原文，预留 4KB
	rg.POST("/import", middleware.BodyLimit(r.importLimit()), vcf.ImportVcard)
	rg.GET("/export", vcf.ExportVcard)
	rg.POST("/share", vcf.ShareCard)

	content := r.handlers.Content
	cg := rg.Group("/content")
	{
		cg.POST("/add", content.AddContent)
		cg.GET("/list", content.GetContentList)
		cg.POST("/order", content.OrderContents)
		cg.POST("/delete", content.DeleteContent)
	}
}

func (r *Router) importLimit() int64 {
	if r.maxImportBytes <= 0 {
		return 0
	}
	return r.maxImportBytes + 4<<10
}

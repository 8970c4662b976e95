package router

import "github.com/gin-gonic/gin"

// RegisterShareRoutes 分享链接，无需 owner_id
func (r *Router) RegisterShareRoutes(rg *gin.RouterGroup) {
	h := r.handlers.Vcf
	rg.GET("/:token", h.GetSharedCard)
	rg.GET("/:token/vcf", h.DownloadShared)
	rg.GET("/:token/qr", h.SharedQR)
}

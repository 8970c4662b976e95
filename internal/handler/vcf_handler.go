package handler

import (
	"net/http"

	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/dto/respond"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

const vcfContentType = "text/plain; charset=utf-8"

type VcfHandler struct {
	vcfSvc service.VcfService
}

func NewVcfHandler(vcfSvc service.VcfService) *VcfHandler {
	return &VcfHandler{vcfSvc: vcfSvc}
}

// ImportVcard 导入 vcf
// POST /card/import
// 请求体: request.ImportVcfRequest
// 响应: respond.ImportRespond，部分成功时 code 为 CodeImportPartial 并附带报告
func (h *VcfHandler) ImportVcard(c *gin.Context) {
	var req request.ImportVcfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.vcfSvc.ImportVcard(req)
	if err != nil {
		if data != nil {
			HandleErrorWithData(c, err, data)
			return
		}
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ExportVcard GET /card/export?card_id=
func (h *VcfHandler) ExportVcard(c *gin.Context) {
	cardId := c.Query("card_id")
	if cardId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "card_id 不能为空"))
		return
	}
	file, err := h.vcfSvc.ExportVcard(cardId)
	if err != nil {
		HandleError(c, err)
		return
	}
	writeVcf(c, file)
}

// ShareCard POST /card/share
func (h *VcfHandler) ShareCard(c *gin.Context) {
	var req request.OwnerCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.vcfSvc.ShareCard(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetSharedCard GET /share/:token?viewer_id=
func (h *VcfHandler) GetSharedCard(c *gin.Context) {
	var q request.SharedCardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.vcfSvc.GetSharedCard(c.Param("token"), q.ViewerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DownloadShared GET /share/:token/vcf
func (h *VcfHandler) DownloadShared(c *gin.Context) {
	file, err := h.vcfSvc.ExportSharedVcard(c.Param("token"))
	if err != nil {
		HandleError(c, err)
		return
	}
	writeVcf(c, file)
}

// SharedQR GET /share/:token/qr?size=
func (h *VcfHandler) SharedQR(c *gin.Context) {
	var q request.QRQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleParamError(c, err)
		return
	}
	png, err := h.vcfSvc.SharedQR(c.Param("token"), q.Size)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func writeVcf(c *gin.Context, file *respond.VcfFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, vcfContentType, []byte(file.Text))
}

package handler

import (
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// AddContent POST /card/content/add
func (h *ContentHandler) AddContent(c *gin.Context) {
	var req request.AddContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.contentSvc.AddContent(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetContentList GET /card/content/list?card_id=
func (h *ContentHandler) GetContentList(c *gin.Context) {
	cardId := c.Query("card_id")
	if cardId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "card_id 不能为空"))
		return
	}
	data, err := h.contentSvc.GetContentList(cardId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// OrderContents POST /card/content/order
func (h *ContentHandler) OrderContents(c *gin.Context) {
	var req request.OrderContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contentSvc.OrderContents(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteContent POST /card/content/delete
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	var req request.DeleteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contentSvc.DeleteContent(req.OwnerId, req.ContentId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

package handler

import (
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardSvc service.CardService
}

func NewCardHandler(cardSvc service.CardService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// CreateCard POST /card/create
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req request.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.cardSvc.CreateCard(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateCard POST /card/update
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req request.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.cardSvc.UpdateCard(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCardInfo GET /card/info?card_id=
func (h *CardHandler) GetCardInfo(c *gin.Context) {
	cardId := c.Query("card_id")
	if cardId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "card_id 不能为空"))
		return
	}
	data, err := h.cardSvc.GetCardInfo(cardId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCardList GET /card/list?owner_id=&page=&page_size=
func (h *CardHandler) GetCardList(c *gin.Context) {
	var req request.CardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.cardSvc.GetCardList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteCard POST /card/delete
func (h *CardHandler) DeleteCard(c *gin.Context) {
	var req request.OwnerCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.cardSvc.DeleteCard(req.OwnerId, req.CardId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

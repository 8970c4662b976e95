package handler

import (
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connSvc service.ConnectionService
}

func NewConnectionHandler(connSvc service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connSvc: connSvc}
}

// Connect POST /connection/connect
// 已存在联系时返回 CodeConnectionExist 并附带该联系
func (h *ConnectionHandler) Connect(c *gin.Context) {
	var req request.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.connSvc.Connect(req)
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

// GetConnectionList GET /connection/list?owner_id=
func (h *ConnectionHandler) GetConnectionList(c *gin.Context) {
	ownerId := c.Query("owner_id")
	if ownerId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "owner_id 不能为空"))
		return
	}
	data, err := h.connSvc.GetConnectionList(ownerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetConnectionInfo GET /connection/info?connection_id=&owner_id=
func (h *ConnectionHandler) GetConnectionInfo(c *gin.Context) {
	var req request.ConnectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.connSvc.GetConnectionInfo(req.OwnerId, req.ConnectionId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteConnection POST /connection/delete
func (h *ConnectionHandler) DeleteConnection(c *gin.Context) {
	var req request.ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.connSvc.DeleteConnection(req.OwnerId, req.ConnectionId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

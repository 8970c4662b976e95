package handler

import (
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/service"
	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser 创建用户
// POST /user/create
// 请求体: request.CreateUserRequest
// 响应: respond.UserInfoRespond (含默认名片 id)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.CreateUser(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserInfo GET /user/info?user_id=
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userId := c.Query("user_id")
	if userId == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "user_id 不能为空"))
		return
	}
	data, err := h.userSvc.GetUserInfo(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

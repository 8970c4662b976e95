package router

import "github.com/gin-gonic/gin"

func (r *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	h := r.handlers.User
	rg.POST("/create", h.CreateUser)
	rg.GET("/info", h.GetUserInfo)
}

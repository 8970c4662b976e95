package router

import "github.com/gin-gonic/gin"

func (r *Router) RegisterConnectionRoutes(rg *gin.RouterGroup) {
	h := r.handlers.Connection
	rg.POST("/connect", h.Connect)
	rg.GET("/list", h.GetConnectionList)
	rg.GET("/info", h.GetConnectionInfo)
	rg.POST("/delete", h.DeleteConnection)
}

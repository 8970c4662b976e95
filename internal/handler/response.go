package handler

import (
	"errors"
	"net/http"

	"kama_card_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData 统一响应结构体
type ResponseData struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// HandleError 业务错误返回其错误码，其余记录日志后返回服务繁忙
func HandleError(c *gin.Context, err error) {
	HandleErrorWithData(c, err, nil)
}

// HandleErrorWithData 部分成功等需要同时返回数据的错误
func HandleErrorWithData(c *gin.Context, err error, data any) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		if codeErr.Code == errorx.CodeDBError || codeErr.Code == errorx.CodeCacheError {
			zap.L().Error("storage error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.JSON(http.StatusOK, ResponseData{Code: codeErr.Code, Msg: codeErr.Msg, Data: data})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.ErrServerBusy.Code,
		Msg:  errorx.ErrServerBusy.Msg,
	})
}

// HandleParamError 绑定失败：校验错误翻译后合并，请求体过大返回 CodeVcardTooLarge
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msg := errorx.ErrInvalidParam.Msg
		if Trans != nil {
			msg = joinFieldErrors(RemoveTopStruct(validationErrs.Translate(Trans)))
		}
		c.JSON(http.StatusOK, ResponseData{Code: errorx.CodeInvalidParam, Msg: msg})
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusOK, ResponseData{Code: errorx.CodeVcardTooLarge, Msg: "请求体过大"})
		return
	}

	zap.L().Debug("param bind error", zap.Error(err))
	c.JSON(http.StatusOK, ResponseData{
		Code: errorx.ErrInvalidParam.Code,
		Msg:  errorx.ErrInvalidParam.Msg,
	})
}

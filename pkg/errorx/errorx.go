package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的错误，支持 errors.Is/errors.As 追溯底层错误
type CodeError struct {
	Code  int
	Msg   string
	cause error
}

// Error 有底层错误时输出 "消息: 底层错误"
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *CodeError) Unwrap() error {
	return e.cause
}

func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg}
}

func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 用法: errorx.Wrap(err, CodeNotFound, "名片不存在")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{Code: code, Msg: msg, cause: err}
}

// Wrapf 用法: errorx.Wrapf(err, CodeNotFound, "名片 %s 不存在", cardId)
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{Code: code, Msg: fmt.Sprintf(format, args...), cause: err}
}

// GetCode 非 CodeError 返回 CodeServerBusy
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// GetMsg 非 CodeError 返回服务繁忙
func GetMsg(err error) string {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Msg
	}
	return ErrServerBusy.Msg
}

// 业务状态码
const (
	CodeSuccess         = 1000 // 成功
	CodeInvalidParam    = 1001 // 请求参数错误
	CodeUserNotExist    = 1002 // 用户不存在
	CodeUserExist       = 1003 // 用户已存在
	CodeServerBusy      = 1005 // 服务繁忙
	CodeNotFound        = 1008 // 资源不存在
	CodeDBError         = 1010 // 数据库错误
	CodeCacheError      = 1011 // 缓存错误
	CodeVcardMalformed  = 1020 // vcf 无法解析
	CodeVcardTooLarge   = 1021 // vcf 超过大小或数量限制
	CodeImportPartial   = 1022 // 部分名片导入成功
	CodeShareNotFound   = 1023 // 分享链接无效
	CodeConnectionExist = 1024 // 已经建立过联系
)

var (
	ErrInvalidParam = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy   = New(CodeServerBusy, "服务繁忙")
)

// IsNotFound 判断是否为"未找到"类错误
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}

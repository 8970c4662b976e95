package vcard

import (
	"errors"
	"fmt"
)

// MalformedVcardError BEGIN/END 配对错误，Index 为出错组件的序号（从 0 开始）
type MalformedVcardError struct {
	Index  int
	Line   int // 出错的逻辑行号（从 1 开始，折行已展开）
	Reason string
}

func (e *MalformedVcardError) Error() string {
	return fmt.Sprintf("vcard: malformed component %d at line %d: %s", e.Index, e.Line, e.Reason)
}

// AsMalformed 取出错误链中的 MalformedVcardError
func AsMalformed(err error) (*MalformedVcardError, bool) {
	var me *MalformedVcardError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

var (
	ErrEmptyVcard  = errors.New("vcard: empty vcard text")
	ErrQREncode    = errors.New("vcard: failed to encode QR code")
	ErrQRDecode    = errors.New("vcard: failed to decode QR code")
	ErrInvalidSize = errors.New("vcard: invalid QR code size")
)

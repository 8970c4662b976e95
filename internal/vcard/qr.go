package vcard

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	qrgen "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MaxQRSize     = 4096
)

// ToQR 把名片文本生成 PNG 二维码，size<=0 时使用默认尺寸
func ToQR(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyVcard
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	if size > MaxQRSize {
		return nil, ErrInvalidSize
	}

	qr, err := qrgen.New(text, qrgen.Medium)
	if err != nil {
		return nil, errors.Join(ErrQREncode, err)
	}
	data, err := qr.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrQREncode, err)
	}
	return data, nil
}

// FromQR 识别 PNG 二维码中的文本
func FromQR(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrQRDecode
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Join(ErrQRDecode, err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Join(ErrQRDecode, err)
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", errors.Join(ErrQRDecode, err)
	}
	return result.GetText(), nil
}

package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GetNowAndLenRandomString 日期前缀加随机串
// 格式: YYMMDD + 字母数字混合，如 241230AbCdE
func GetNowAndLenRandomString(length int) string {
	result := make([]byte, length)
	n := big.NewInt(int64(len(charset)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[idx.Int64()]
	}
	return time.Now().Format("060102") + string(result)
}

// NewId 带前缀的实体 ID，例如 NewId("C") → C241230AbCdE12345
func NewId(prefix string) string {
	return prefix + GetNowAndLenRandomString(11)
}

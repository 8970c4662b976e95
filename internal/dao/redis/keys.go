package redis

import (
	"strconv"
	"time"
)

// 导出文本缓存，按名片 uuid 与更新时间区分
const vcardKeyPrefix = "vcard_text_"

// VcardKey 单张名片某一版本导出文本的缓存键，名片更新后旧键不会再被读到
func VcardKey(cardId string, version time.Time) string {
	return vcardKeyPrefix + cardId + "_" + strconv.FormatInt(version.UnixNano(), 10)
}

// VcardPattern 全部导出缓存，配置切换折行时整体失效
func VcardPattern() string {
	return vcardKeyPrefix + "*"
}

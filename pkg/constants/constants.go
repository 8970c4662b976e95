package constants

const (
	CHANNEL_SIZE       = 100  // 事件通道缓冲大小
	REDIS_TIMEOUT      = 1    // redis 操作超时（秒）
	CACHE_WORKER_COUNT = 4    // 缓存异步任务 worker 数量
	CACHE_TASK_QUEUE   = 256  // 缓存异步任务队列长度
	DEFAULT_PAGE_SIZE  = 20   // 通讯录分页默认条数
	MAX_PAGE_SIZE      = 100  // 通讯录分页最大条数
	DEFAULT_CARD_TITLE = "Personal"
)

// 实体 ID 前缀
const (
	USER_ID_PREFIX       = "U"
	CARD_ID_PREFIX       = "C"
	CONNECTION_ID_PREFIX = "L"
)

// 名片事件类型
const (
	EVENT_CARD_IMPORTED      = "card.imported"
	EVENT_CARD_EXPORTED      = "card.exported"
	EVENT_CARD_SHARED        = "card.shared"
	EVENT_CONNECTION_CREATED = "connection.created"
)

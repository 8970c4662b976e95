package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init 初始化雪花节点，machineID 取值 0-1023，只生效一次
func Init(machineID int64) {
	nodeOnce.Do(func() {
		if machineID < 0 || machineID > 1023 {
			zap.L().Warn("invalid snowflake machine id, fallback to 1", zap.Int64("machine_id", machineID))
			machineID = 1
		}
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			zap.L().Fatal("init snowflake node failed", zap.Error(err))
		}
	})
}

// GenerateIDString 导入批次号，字符串形式避免前端精度丢失
func GenerateIDString() string {
	Init(1)
	return node.Generate().String()
}

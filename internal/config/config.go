// Package config 负责加载 TOML 配置文件，按候选路径依次查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig 服务基本信息
type MainConfig struct {
	AppName  string `toml:"appName"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Mode     string `toml:"mode"`     // dev / release
	TLS      bool   `toml:"tls"`      // 开启后强制 https
	CertFile string `toml:"certFile"` // 仅 TLS 开启时使用
	KeyFile  string `toml:"keyFile"`
}

// MysqlConfig 数据库配置，Driver 为空时默认 mysql
type MysqlConfig struct {
	Driver       string `toml:"driver"` // mysql / postgres / sqlite
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
	Dsn          string `toml:"dsn"`        // 填写后忽略上面的各项
	SqlitePath   string `toml:"sqlitePath"` // driver = sqlite 时的数据库文件
}

// RedisConfig 名片文本缓存
type RedisConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Password        string `toml:"password"`
	Db              int    `toml:"db"`
	VcardTTLSeconds int    `toml:"vcardTTLSeconds"` // 导出文本缓存时长，默认 3600
}

// LogConfig 日志配置，lumberjack 负责切割
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`    // MB
	MaxBackups int    `toml:"maxBackups"` // 个
	MaxAge     int    `toml:"maxAge"`     // 天
	Compress   bool   `toml:"compress"`
	Level      string `toml:"level"`
}

// KafkaConfig 名片事件投递配置
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // "channel" 或 "kafka"
	HostPort    string        `toml:"hostPort"`
	CardTopic   string        `toml:"cardTopic"`
	Timeout     time.Duration `toml:"timeout"` // 秒
}

// VcardConfig 导入导出相关限制
type VcardConfig struct {
	FoldLines          bool  `toml:"foldLines"`          // 导出时按 75 字节折行
	MaxImportBytes     int64 `toml:"maxImportBytes"`     // 导入请求体上限
	MaxImportCards     int   `toml:"maxImportCards"`     // 单次导入的名片数量上限
	KeepImportedGender bool  `toml:"keepImportedGender"` // 为 false 时导入丢弃 GENDER
}

// ShareConfig 分享链接与二维码
type ShareConfig struct {
	BaseURL string `toml:"baseURL"`
	QRSize  int    `toml:"qrSize"`
}

// SnowflakeConfig 导入批次号使用的雪花节点
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"` // 0-1023
}

// Config 总配置
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
	VcardConfig     `toml:"vcardConfig"`
	ShareConfig     `toml:"shareConfig"`
	SnowflakeConfig `toml:"snowflakeConfig"`
}

var config *Config

// 本地配置优先
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml",
	"../../configs/config.toml",
}

// LoadConfig 加载第一个可用的配置文件
func LoadConfig() error {
	for _, path := range searchPaths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}
	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// LoadFile 从指定路径加载，命令行 -c 参数使用
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	config = cfg
	return cfg, nil
}

// Default 未找到配置文件时使用的默认值
func Default() *Config {
	return &Config{
		MainConfig:  MainConfig{AppName: "kama_card_server", Host: "0.0.0.0", Port: 8000, Mode: "dev"},
		MysqlConfig: MysqlConfig{Driver: "mysql", Host: "127.0.0.1", Port: 3306, DatabaseName: "kama_card"},
		RedisConfig: RedisConfig{Host: "127.0.0.1", Port: 6379, VcardTTLSeconds: 3600},
		LogConfig:   LogConfig{LogPath: "./logs", Level: "info"},
		KafkaConfig: KafkaConfig{MessageMode: "channel", HostPort: "127.0.0.1:9092", CardTopic: "card_events", Timeout: 1},
		VcardConfig: VcardConfig{MaxImportBytes: 2 << 20, MaxImportCards: 1000},
		ShareConfig: ShareConfig{BaseURL: "http://127.0.0.1:8000", QRSize: 256},
	}
}

// GetConfig 全局配置单例，首次调用时加载
func GetConfig() *Config {
	if config == nil {
		config = Default()
		_ = LoadConfig() // 找不到时使用默认值
	}
	return config
}

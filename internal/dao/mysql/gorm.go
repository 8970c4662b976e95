// Package dao 负责建立数据库连接、迁移表结构并初始化 Repository 层
package dao

import (
	"fmt"

	"kama_card_server/internal/config"
	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormDB 全局 GORM 实例
var GormDB *gorm.DB

// Repos 全局 Repository 聚合，供 Service 层注入
var Repos *repository.Repositories

// Init 连接数据库、AutoMigrate 并初始化全局 Repos，失败直接退出
func Init() {
	db, err := Open(&config.GetConfig().MysqlConfig)
	if err != nil {
		zap.L().Fatal("open database failed", zap.Error(err))
	}
	if err = Migrate(db); err != nil {
		zap.L().Fatal("auto migrate failed", zap.Error(err))
	}
	GormDB = db
	Repos = repository.NewRepositories(db)
}

// Open 根据 Driver 选择 GORM 驱动
func Open(cfg *config.MysqlConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func dialectorFor(cfg *config.MysqlConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := cfg.Dsn
		if dsn == "" {
			// user:password@tcp(host:port)/database?params
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DatabaseName)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := cfg.Dsn
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DatabaseName)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		path := cfg.SqlitePath
		if path == "" {
			path = "kama_card.db"
		}
		return sqlite.Open(path), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Migrate 自动建表，不会删除已有字段
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserInfo{},
		&model.ContactCard{},
		&model.CardAddress{},
		&model.CardPhone{},
		&model.CardEmail{},
		&model.CardOrgProperty{},
		&model.CardTag{},
		&model.CardUrl{},
		&model.CardContent{},
		&model.Connection{},
	)
}

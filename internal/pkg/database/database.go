package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"data-catalog/internal/model"
	"data-catalog/internal/pkg/config"
	logger2 "data-catalog/internal/pkg/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.DatabaseConfig) error {
	if cfg.Driver != "" && cfg.Driver != "mysql" {
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}

	db, err := Open(mysql.Open(cfg.GetDSN()), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}
	DB = db

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("获取数据库实例失败: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(DB); err != nil {
			return err
		}
	}

	return nil
}

// Open 使用指定方言打开连接, 测试中传入 sqlite
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	level := getLogLevel(logLevel)
	gormConfig := &gorm.Config{
		Logger: logger.New(logger2.GetWriter(), logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      level,
			Colorful:      false,
		}).LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		// 唯一约束冲突转换为 gorm.ErrDuplicatedKey
		TranslateError: true,
	}
	return gorm.Open(dialector, gormConfig)
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("同步表结构失败: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}

func getLogLevel(level string) logger.LogLevel {
	switch level {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Silent
	}
}

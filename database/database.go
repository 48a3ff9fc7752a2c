package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"donation/config"
	"donation/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
// 嵌入式 SQLite 文件库，路径来自配置；目录不存在时自动创建
func Init(cfg *config.Config) error {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	// busy_timeout 避免并发写入时立即报 database is locked
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", cfg.Database.Path)

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// SQLite 单写入者，连接池无需放大
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Entry{},
	); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}

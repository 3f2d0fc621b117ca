package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rehiy/sms-text/models"
)

const memoryPath = ":memory:"

var (
	db     *gorm.DB
	once   sync.Once
	dbPath string
)

// Close 关闭数据库连接
func Close() error {
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			return sqlDB.Close()
		} else {
			return err
		}
	}
	return nil
}

// InitDB 初始化数据库连接
func InitDB(path string) error {
	var err error
	once.Do(func() {
		err = open(path)
	})
	return err
}

// Reset 关闭当前连接并重新打开，供测试使用内存库
func Reset(path string) error {
	if err := Close(); err != nil {
		return err
	}
	db = nil
	return open(path)
}

// open 打开数据库并建表
func open(path string) error {
	dbPath = path
	if dbPath == "" {
		dbPath = "data/smstext.db"
	}

	// 创建目录
	if dbPath != memoryPath {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create db dir: %w", err)
		}
	}

	// 连接数据库
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// 内存库只在单个连接内可见
	if dbPath == memoryPath {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	db = conn

	// 创建表
	if err := createTables(); err != nil {
		return err
	}

	log.Infof("[Database] Initialized at: %s", dbPath)
	return nil
}

// createTables 创建数据表
func createTables() error {
	// 自动迁移
	err := db.AutoMigrate(
		&models.Conversion{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	// 初始化默认设置
	if err := InitDefaultSettings(); err != nil {
		return fmt.Errorf("failed to init default settings: %w", err)
	}

	return nil
}

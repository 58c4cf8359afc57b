package mysql

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// NewDB 创建数据库连接池
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 每个仓储方法只执行单条语句，关闭GORM默认事务
// 5. 返回cleanup函数，进程退出时关闭连接池（由wire串联）
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("dbname", cfg.Database.DBName),
	)

	// 自动建表（开发环境）
	// 注意：生产环境应使用专门的迁移工具，这里只负责首次创建books表及全文索引
	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
		log.Info("books table migrated")
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Error("close database failed", zap.Error(err))
		}
	}

	return db, cleanup, nil
}

// AutoMigrate 创建books表及FULLTEXT索引
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&BookModel{})
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. ID为UUID v4字符串，插入前由BeforeCreate生成（调用方已指定时保留）
// 3. genres存储JSON编码后的字符串数组
// 4. title/author/genres共用FULLTEXT索引，支持MATCH ... AGAINST自然语言检索
// 5. Stock使用指针：nil表示未指定（取列默认值1），与显式的0区分
// 6. 物理删除，不使用gorm.DeletedAt
type BookModel struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	Title         string `gorm:"size:255;not null;index:idx_books_fulltext,class:FULLTEXT"`
	Author        string `gorm:"size:255;not null;index:idx_books_fulltext,class:FULLTEXT"`
	PublishedYear int    `gorm:"column:publishedYear"`
	Genres        string `gorm:"size:255;index:idx_books_fulltext,class:FULLTEXT"`
	Stock         *int   `gorm:"default:1"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate 生成主键
func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

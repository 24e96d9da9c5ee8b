package inits

import (
	"class-website/app/server/config"
	"class-website/app/server/store"
	"class-website/app/server/store/dbstore"
	"class-website/app/server/store/filestore"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DB(driver string, conn string, debugMode bool, l *zap.Logger) (db *gorm.DB, err error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DBDriverPostgres:
		dialector = postgres.Open(conn)
	case config.DBDriverSQLite:
		dialector = sqlite.Open(conn)
	default:
		return nil, fmt.Errorf("unknown db driver: %s", driver)
	}

	gl, err := gormLogger(l, debugMode)
	if err != nil {
		return nil, err
	}
	gormCfg := &gorm.Config{Logger: gl}

	// 打开连接
	if db, err = gorm.Open(dialector, gormCfg); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite 只允许一个写者
	if driver == config.DBDriverSQLite {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	// 迁移
	if err = dbstore.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

// gormLogger 把 gorm 的输出交给 zap；查不到记录是正常流程，不记录
func gormLogger(l *zap.Logger, debugMode bool) (logger.Interface, error) {
	stdLog, err := zap.NewStdLogAt(l.Named("gorm").WithOptions(zap.AddCallerSkip(2)), zap.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create gorm logger: %w", err)
	}

	level := logger.Warn
	if debugMode {
		level = logger.Info
	}
	return logger.New(stdLog, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}

// Store 根据配置选择内容存储后端
func Store(cfg *config.Config, l *zap.Logger) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.StoreBackendDB:
		db, err := DB(cfg.Storage.DBDriver, cfg.Storage.DBConnectionString, !cfg.System.IsProd, l)
		if err != nil {
			return nil, err
		}
		return dbstore.New(db, l.Named("dbstore")), nil
	case config.StoreBackendFile:
		s, err := filestore.New(cfg.Storage.DataDir, l.Named("filestore"))
		if err != nil {
			return nil, fmt.Errorf("failed to init file store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Storage.Backend)
	}
}

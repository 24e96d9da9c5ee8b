// Package dbstore implements store.Store on top of gorm. Identifiers are
// assigned by the database.
package dbstore

import (
	"class-website/app/server/models"
	"class-website/app/server/store"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"strconv"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	l  *zap.Logger
	db *gorm.DB
}

func New(db *gorm.DB, l *zap.Logger) *Store {
	return &Store{
		l:  l,
		db: db,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.GalleryItem{},
		&models.StructureMember{},
		&models.Confession{},
		&models.Settings{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}

// parseID 非数字的 id 不可能存在于数据库中，直接视为未找到
func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, store.ErrNotFound
	}
	return uint(n), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// dbErr 把 gorm 的未找到错误映射为 store.ErrNotFound
func dbErr(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// Package store defines the persistence contract shared by the database and
// flat-file backends.
package store

import (
	"class-website/app/server/types"
	"context"
)

type Store interface {
	// 管理员
	UserGetByUsername(ctx context.Context, username string) (*types.AdminUser, error)
	UserCreate(ctx context.Context, user *types.AdminUser) error

	// 相册，批量创建要么全部成功，要么全部失败
	GalleryList(ctx context.Context) ([]types.GalleryItem, error)
	GalleryGet(ctx context.Context, id string) (*types.GalleryItem, error)
	GalleryCreate(ctx context.Context, items ...*types.GalleryItem) error
	GalleryUpdate(ctx context.Context, id string, patch *types.GalleryPatch) (*types.GalleryItem, error)
	GalleryDelete(ctx context.Context, id string) (*types.GalleryItem, error)

	// 组织结构
	StructureList(ctx context.Context) ([]types.StructureMember, error)
	StructureCreate(ctx context.Context, member *types.StructureMember) error
	StructureUpdate(ctx context.Context, id string, patch *types.StructurePatch) (*types.StructureMember, error)
	StructureDelete(ctx context.Context, id string) error

	// 匿名留言，列表按时间倒序
	ConfessionList(ctx context.Context) ([]types.Confession, error)
	ConfessionCreate(ctx context.Context, message string) (*types.Confession, error)
	ConfessionDelete(ctx context.Context, id string) error

	// 站点设置（单例）
	SettingsGet(ctx context.Context) (*types.Settings, error)
	SettingsPut(ctx context.Context, patch *types.SettingsPatch) (*types.Settings, error)

	Stats(ctx context.Context) (*types.Stats, error)
	Close() error
}

// Package storetest holds the behaviour every store.Store backend must share.
package storetest

import (
	"class-website/app/server/constants"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"class-website/app/server/utils"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run 对一个新建的空存储执行全部用例， newStore 每个子测试调用一次
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Gallery", func(t *testing.T) { testGallery(t, newStore(t)) })
	t.Run("GalleryValidation", func(t *testing.T) { testGalleryValidation(t, newStore(t)) })
	t.Run("GalleryFilenameUnique", func(t *testing.T) { testGalleryFilenameUnique(t, newStore(t)) })
	t.Run("Structure", func(t *testing.T) { testStructure(t, newStore(t)) })
	t.Run("StructureValidation", func(t *testing.T) { testStructureValidation(t, newStore(t)) })
	t.Run("Confessions", func(t *testing.T) { testConfessions(t, newStore(t)) })
	t.Run("ConfessionValidation", func(t *testing.T) { testConfessionValidation(t, newStore(t)) })
	t.Run("Settings", func(t *testing.T) { testSettings(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
	t.Run("UnknownIDs", func(t *testing.T) { testUnknownIDs(t, newStore(t)) })
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.UserGetByUsername(ctx, "admin")
	require.ErrorIs(t, err, store.ErrNotFound)

	user := &types.AdminUser{Username: "admin", PasswordHash: "hash", Role: constants.RoleAdmin}
	require.NoError(t, s.UserCreate(ctx, user))
	require.NotEmpty(t, user.ID)

	got, err := s.UserGetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, constants.RoleAdmin, got.Role)

	// 用户名精确匹配
	_, err = s.UserGetByUsername(ctx, "Admin")
	require.ErrorIs(t, err, store.ErrNotFound)

	// 用户名唯一
	require.Error(t, s.UserCreate(ctx, &types.AdminUser{Username: "admin", PasswordHash: "other", Role: constants.RoleAdmin}))
}

func testGallery(t *testing.T, s store.Store) {
	ctx := context.Background()

	items, err := s.GalleryList(ctx)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)

	now := time.Now().UTC().Truncate(time.Second)
	first := &types.GalleryItem{Filename: "photo-1.jpg", OriginalName: "a.jpg", Title: "a", UploadDate: now, Size: 10, Mimetype: "image/jpeg"}
	second := &types.GalleryItem{Filename: "photo-2.png", OriginalName: "b.png", Title: "b", UploadDate: now, Size: 20, Mimetype: "image/png"}
	require.NoError(t, s.GalleryCreate(ctx, first, second))
	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	require.NotEqual(t, first.ID, second.ID)

	items, err = s.GalleryList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.False(t, items[0].Featured)
	assert.Equal(t, int64(10), items[0].Size)
	assert.True(t, now.Equal(items[0].UploadDate))

	updated, err := s.GalleryUpdate(ctx, first.ID, &types.GalleryPatch{Title: utils.P("new title"), Featured: utils.P(true)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "new title", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, "photo-1.jpg", updated.Filename)

	// 可以改回 false 与空字符串
	updated, err = s.GalleryUpdate(ctx, first.ID, &types.GalleryPatch{Title: utils.P(""), Featured: utils.P(false)})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Title)
	assert.False(t, updated.Featured)

	got, err := s.GalleryGet(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
	assert.False(t, got.Featured)

	deleted, err := s.GalleryDelete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "photo-1.jpg", deleted.Filename)

	_, err = s.GalleryDelete(ctx, first.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GalleryGet(ctx, first.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	items, err = s.GalleryList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func testGalleryValidation(t *testing.T, s store.Store) {
	ctx := context.Background()

	// 批量中有一条不合法时一条都不写入
	err := s.GalleryCreate(ctx,
		&types.GalleryItem{Filename: "ok.jpg"},
		&types.GalleryItem{Filename: " "},
	)
	_, ok := store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	items, err := s.GalleryList(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func testGalleryFilenameUnique(t *testing.T, s store.Store) {
	ctx := context.Background()

	first := &types.GalleryItem{Filename: "photo-1.jpg"}
	require.NoError(t, s.GalleryCreate(ctx, first))

	// 已被其他记录使用的文件
	err := s.GalleryCreate(ctx, &types.GalleryItem{Filename: "photo-1.jpg"})
	_, ok := store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	// 批量中重复，或者批量中有一个已被使用，整批都不写入
	err = s.GalleryCreate(ctx, &types.GalleryItem{Filename: "photo-2.jpg"}, &types.GalleryItem{Filename: "photo-2.jpg"})
	_, ok = store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	err = s.GalleryCreate(ctx, &types.GalleryItem{Filename: "photo-3.jpg"}, &types.GalleryItem{Filename: "photo-1.jpg"})
	_, ok = store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	items, err := s.GalleryList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)

	// 删除后文件名可以再次使用
	_, err = s.GalleryDelete(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, s.GalleryCreate(ctx, &types.GalleryItem{Filename: "photo-1.jpg"}))
}

func testStructure(t *testing.T, s store.Store) {
	ctx := context.Background()

	member := &types.StructureMember{Position: "Ketua Kelas", Name: "Budi", Icon: "👑", Level: "executive"}
	require.NoError(t, s.StructureCreate(ctx, member))
	require.NotEmpty(t, member.ID)

	other := &types.StructureMember{Position: "Sekretaris 1", Name: "Sari", Level: "staff"}
	require.NoError(t, s.StructureCreate(ctx, other))

	updated, err := s.StructureUpdate(ctx, member.ID, &types.StructurePatch{Name: utils.P("Andi")})
	require.NoError(t, err)
	assert.Equal(t, member.ID, updated.ID)
	assert.Equal(t, "Andi", updated.Name)
	assert.Equal(t, "Ketua Kelas", updated.Position)
	assert.Equal(t, "👑", updated.Icon)

	members, err := s.StructureList(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Andi", members[0].Name)

	require.NoError(t, s.StructureDelete(ctx, member.ID))
	require.ErrorIs(t, s.StructureDelete(ctx, member.ID), store.ErrNotFound)

	members, err = s.StructureList(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, other.ID, members[0].ID)
}

func testStructureValidation(t *testing.T, s store.Store) {
	ctx := context.Background()

	err := s.StructureCreate(ctx, &types.StructureMember{Name: "No Position"})
	_, ok := store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	err = s.StructureCreate(ctx, &types.StructureMember{Position: "Bendahara 1"})
	_, ok = store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	member := &types.StructureMember{Position: "Bendahara 1", Name: "Rina"}
	require.NoError(t, s.StructureCreate(ctx, member))

	// 更新不能把必填字段清空
	_, err = s.StructureUpdate(ctx, member.ID, &types.StructurePatch{Name: utils.P("  ")})
	_, ok = store.IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)

	members, err := s.StructureList(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Rina", members[0].Name)
}

func testConfessions(t *testing.T, s store.Store) {
	ctx := context.Background()

	a, err := s.ConfessionCreate(ctx, "A")
	require.NoError(t, err)
	b, err := s.ConfessionCreate(ctx, "  B  ")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Message)
	assert.False(t, b.Timestamp.IsZero())

	confessions, err := s.ConfessionList(ctx)
	require.NoError(t, err)
	require.Len(t, confessions, 2)
	assert.Equal(t, []string{b.ID, a.ID}, []string{confessions[0].ID, confessions[1].ID})
	assert.Equal(t, "B", confessions[0].Message)

	require.NoError(t, s.ConfessionDelete(ctx, a.ID))
	require.ErrorIs(t, s.ConfessionDelete(ctx, a.ID), store.ErrNotFound)

	confessions, err = s.ConfessionList(ctx)
	require.NoError(t, err)
	require.Len(t, confessions, 1)
}

func testConfessionValidation(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, message := range []string{"", "   ", strings.Repeat("x", constants.ConfessionMaxLength+1)} {
		_, err := s.ConfessionCreate(ctx, message)
		_, ok := store.IsValidation(err)
		require.True(t, ok, "expected validation error for %d chars, got %v", len(message), err)
	}

	_, err := s.ConfessionCreate(ctx, strings.Repeat("x", constants.ConfessionMaxLength))
	require.NoError(t, err)

	// 按字符而不是字节计数
	_, err = s.ConfessionCreate(ctx, strings.Repeat("é", constants.ConfessionMaxLength))
	require.NoError(t, err)

	confessions, err := s.ConfessionList(ctx)
	require.NoError(t, err)
	assert.Len(t, confessions, 2)
}

func testSettings(t *testing.T, s store.Store) {
	ctx := context.Background()

	first, err := s.SettingsGet(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, constants.DefaultSiteName, first.SiteName)
	assert.Equal(t, constants.DefaultWelcomeText, first.WelcomeText)
	assert.False(t, first.LastUpdated.IsZero())

	second, err := s.SettingsGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.LastUpdated.Equal(second.LastUpdated))

	put, err := s.SettingsPut(ctx, &types.SettingsPatch{SiteName: utils.P("X")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, put.ID)
	assert.Equal(t, "X", put.SiteName)
	assert.Equal(t, constants.DefaultSiteTitle, put.SiteTitle)
	assert.True(t, put.LastUpdated.After(first.LastUpdated))

	again, err := s.SettingsPut(ctx, &types.SettingsPatch{})
	require.NoError(t, err)
	assert.True(t, again.LastUpdated.After(put.LastUpdated))

	got, err := s.SettingsGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "X", got.SiteName)
	assert.True(t, got.LastUpdated.Equal(again.LastUpdated))
}

func testStats(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.NoError(t, s.GalleryCreate(ctx, &types.GalleryItem{Filename: "a.jpg"}))
	require.NoError(t, s.StructureCreate(ctx, &types.StructureMember{Position: "p", Name: "n"}))
	require.NoError(t, s.StructureCreate(ctx, &types.StructureMember{Position: "p2", Name: "n2"}))
	_, err := s.ConfessionCreate(ctx, "hello")
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Gallery)
	assert.Equal(t, int64(2), stats.Structure)
	assert.Equal(t, int64(1), stats.Confessions)
	assert.WithinDuration(t, time.Now(), stats.LastActivity, time.Minute)
}

func testUnknownIDs(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, id := range []string{"999999", "not-an-id", ""} {
		_, err := s.GalleryUpdate(ctx, id, &types.GalleryPatch{})
		assert.ErrorIs(t, err, store.ErrNotFound, id)
		_, err = s.GalleryDelete(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound, id)
		_, err = s.StructureUpdate(ctx, id, &types.StructurePatch{})
		assert.ErrorIs(t, err, store.ErrNotFound, id)
		assert.ErrorIs(t, s.StructureDelete(ctx, id), store.ErrNotFound, id)
		assert.ErrorIs(t, s.ConfessionDelete(ctx, id), store.ErrNotFound, id)
	}
}

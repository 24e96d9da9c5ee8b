package inits

import (
	"class-website/app/server/constants"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"context"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
)

// 初始组织结构
var defaultStructure = []types.StructureMember{
	{Position: "Wali Kelas", Name: "Bapak/Ibu Guru", Icon: "👩‍🏫", Level: "leader"},
	{Position: "Ketua Kelas", Name: "Nama Ketua", Icon: "👑", Level: "executive"},
	{Position: "Wakil Ketua", Name: "Nama Wakil Ketua", Icon: "🤝", Level: "executive"},
	{Position: "Sekretaris 1", Name: "Nama Sekretaris 1", Icon: "📝", Level: "staff"},
	{Position: "Sekretaris 2", Name: "Nama Sekretaris 2", Icon: "📋", Level: "staff"},
	{Position: "Bendahara 1", Name: "Nama Bendahara 1", Icon: "💰", Level: "staff"},
	{Position: "Bendahara 2", Name: "Nama Bendahara 2", Icon: "💳", Level: "staff"},
	{Position: "Keamanan 1", Name: "Nama Keamanan 1", Icon: "🛡️", Level: "division"},
	{Position: "Keamanan 2", Name: "Nama Keamanan 2", Icon: "🔒", Level: "division"},
	{Position: "Rohani 1", Name: "Nama Rohani 1", Icon: "🕊️", Level: "division"},
	{Position: "Rohani 2", Name: "Nama Rohani 2", Icon: "🤲", Level: "division"},
	{Position: "Kebersihan 1", Name: "Nama Kebersihan 1", Icon: "🧹", Level: "division"},
	{Position: "Kebersihan 2", Name: "Nama Kebersihan 2", Icon: "✨", Level: "division"},
}

// Seed 初始化启动数据，重复执行不会产生新的记录
func Seed(ctx context.Context, st store.Store, username string, password string, l *zap.Logger) (err error) {
	// 初始化用户
	if _, err = st.UserGetByUsername(ctx, username); err == nil {
		l.Info("admin user already exists", zap.String("username", username))
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to find admin user: %w", err)
	} else {
		// 创建密码
		var hash string
		if hash, err = argon2id.CreateHash(password, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = st.UserCreate(ctx, &types.AdminUser{
			Username:     username,
			PasswordHash: hash,
			Role:         constants.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		l.Info("admin user created", zap.String("username", username))
	}

	// 初始化组织结构
	members, err := st.StructureList(ctx)
	if err != nil {
		return fmt.Errorf("failed to list structure: %w", err)
	} else if len(members) == 0 {
		for i := range defaultStructure {
			member := defaultStructure[i]
			if err = st.StructureCreate(ctx, &member); err != nil {
				return fmt.Errorf("failed to create default structure: %w", err)
			}
		}
		l.Info("default structure created", zap.Int("count", len(defaultStructure)))
	}

	// 初始化站点设置，不存在时 SettingsGet 会写入默认值
	if _, err = st.SettingsGet(ctx); err != nil {
		return fmt.Errorf("failed to init settings: %w", err)
	}

	// 已有数据或全部导入成功
	return nil
}

package handlers

import (
	"class-website/app/server/assets"
	"class-website/app/server/jwt"
	"class-website/app/server/revocation"
	"class-website/app/server/store"
	"go.uber.org/zap"
)

type App struct {
	l       *zap.Logger     // 日志
	st      store.Store     // 内容存储
	jwt     *jwt.JWT        // JWT ，用于无状态验证
	revoked revocation.List // 已登出的令牌
	assets  *assets.Manager // 上传的图片
}

func NewApp(l *zap.Logger, st store.Store, j *jwt.JWT, revoked revocation.List, am *assets.Manager) *App {
	return &App{
		l:       l,
		st:      st,
		jwt:     j,
		revoked: revoked,
		assets:  am,
	}
}

package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour // 登录令牌有效期
	RoleAdmin         = "admin"
)

const ContextKeyUser = "user" // echo context 中保存 *jwt.User 的 key

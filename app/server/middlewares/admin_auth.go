package middlewares

import (
	"class-website/app/server/constants"
	"class-website/app/server/jwt"
	"class-website/app/server/revocation"
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

const (
	msgNoToken      = "Unauthorized: No token provided"
	msgInvalidToken = "Unauthorized: Invalid token"
)

// AdminAuth 缺少令牌返回 401 ，令牌无效、过期或已吊销返回 403
func AdminAuth(j *jwt.JWT, revoked revocation.List, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 token
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{Error: msgNoToken})
			}

			// 验证 token
			jwtUser, err := j.ParseUser(token)
			if err != nil {
				l.Debug("invalid token", zap.Error(err))
				return c.JSON(http.StatusForbidden, &types.ErrorMessage{Error: msgInvalidToken})
			}

			// 检查是否已经登出
			if isRevoked, err := revoked.IsRevoked(c.Request().Context(), jwtUser.TokenID); err != nil {
				l.Error("failed to check token revocation", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{Error: "Internal server error"})
			} else if isRevoked {
				return c.JSON(http.StatusForbidden, &types.ErrorMessage{Error: msgInvalidToken})
			}

			// 验证权限
			if jwtUser.Role != constants.RoleAdmin {
				return c.JSON(http.StatusForbidden, &types.ErrorMessage{Error: msgInvalidToken})
			}

			// 设置 context
			c.Set(constants.ContextKeyUser, jwtUser)

			// 继续处理
			return next(c)
		}
	}
}

// bearerToken 取 "Bearer <token>" 中的第二段，格式不对时返回空
func bearerToken(authHeader string) string {
	splits := strings.Fields(authHeader)
	if len(splits) != 2 || !strings.EqualFold(splits[0], "bearer") {
		return ""
	}
	return splits[1]
}

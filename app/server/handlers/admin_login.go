package handlers

import (
	"class-website/app/server/constants"
	"class-website/app/server/jwt"
	"class-website/app/server/store"
	"class-website/app/server/types"
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const msgInvalidCredentials = "Invalid credentials"

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Username and password are required")
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Username and password are required")
	}

	user, err := a.st.UserGetByUsername(rctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.l.Info("login with unknown username", zap.String("username", req.Username))
			return a.er(c, http.StatusUnauthorized, msgInvalidCredentials)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Login failed")
		}
	}

	// 提取密码 hash 并进行校验
	if match, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Login failed")
	} else if !match {
		// 密码不一致
		a.l.Info("login with wrong password", zap.String("username", req.Username))
		return a.er(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	// 签出 JWT
	token, err := a.jwt.SignToken(&jwt.User{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Expires:  time.Now().Add(constants.AuthTokenDuration),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Login failed")
	}

	// 返回
	return c.JSON(http.StatusOK, &types.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: types.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}

// AuthLogout 把当前令牌加入吊销列表，未启用 redis 时只能等令牌过期
func (a *App) AuthLogout(c echo.Context) error {
	jwtUser := a.jwtUser(c)

	if err := a.revoked.Revoke(c.Request().Context(), jwtUser.TokenID, jwtUser.Expires); err != nil {
		a.l.Error("failed to revoke token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Logout failed")
	}

	return c.JSON(http.StatusOK, &types.Message{Message: "Logout successful"})
}

func (a *App) AuthMe(c echo.Context) error {
	jwtUser := a.jwtUser(c)

	return c.JSON(http.StatusOK, &types.UserInfo{
		ID:       jwtUser.ID,
		Username: jwtUser.Username,
		Role:     jwtUser.Role,
	})
}

// jwtUser 由 AdminAuth 中间件写入，只能在受保护的路由中使用
func (a *App) jwtUser(c echo.Context) *jwt.User {
	return c.Get(constants.ContextKeyUser).(*jwt.User)
}

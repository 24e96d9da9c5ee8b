package handlers

import (
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

const msgConfessionNotFound = "Confession not found"

// ConfessionList 最新的在前
func (a *App) ConfessionList(c echo.Context) error {
	confessions, err := a.st.ConfessionList(c.Request().Context())
	if err != nil {
		return a.storeErr(c, err, "fetch confessions", msgConfessionNotFound)
	}
	return c.JSON(http.StatusOK, confessions)
}

// ConfessionCreate 匿名提交，不需要登录
func (a *App) ConfessionCreate(c echo.Context) error {
	var req types.ConfessionRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Message is required")
	}

	confession, err := a.st.ConfessionCreate(c.Request().Context(), req.Message)
	if err != nil {
		return a.storeErr(c, err, "submit confession", msgConfessionNotFound)
	}

	return c.JSON(http.StatusCreated, &types.ConfessionResponse{
		Message: "Confession submitted successfully",
		Data:    *confession,
	})
}

func (a *App) ConfessionDelete(c echo.Context) error {
	if err := a.st.ConfessionDelete(c.Request().Context(), c.Param("id")); err != nil {
		return a.storeErr(c, err, "delete confession", msgConfessionNotFound)
	}
	return c.JSON(http.StatusOK, &types.Message{Message: "Confession deleted successfully"})
}

package handlers

import (
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// SettingsGet 不存在时会写入默认值
func (a *App) SettingsGet(c echo.Context) error {
	settings, err := a.st.SettingsGet(c.Request().Context())
	if err != nil {
		return a.storeErr(c, err, "fetch settings", "Settings not found")
	}
	return c.JSON(http.StatusOK, settings)
}

func (a *App) SettingsUpdate(c echo.Context) error {
	var patch types.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	settings, err := a.st.SettingsPut(c.Request().Context(), &patch)
	if err != nil {
		return a.storeErr(c, err, "update settings", "Settings not found")
	}
	return c.JSON(http.StatusOK, settings)
}

func (a *App) Stats(c echo.Context) error {
	stats, err := a.st.Stats(c.Request().Context())
	if err != nil {
		return a.storeErr(c, err, "fetch stats", "Stats not found")
	}
	return c.JSON(http.StatusOK, stats)
}

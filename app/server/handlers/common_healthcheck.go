package handlers

import (
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.Health{Status: "ok"})
}

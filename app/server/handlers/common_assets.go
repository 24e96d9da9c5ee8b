package handlers

import (
	"class-website/app/server/assets"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// GalleryImage 从当前的图片存储后端读取文件
func (a *App) GalleryImage(c echo.Context) error {
	f, err := a.assets.Open(c.Request().Context(), c.Param("filename"))
	if err != nil {
		if errors.Is(err, assets.ErrNotExist) || errors.Is(err, assets.ErrBadFilename) {
			return a.er(c, http.StatusNotFound, "Endpoint not found")
		}
		a.l.Error("failed to open gallery image", zap.String("filename", c.Param("filename")), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal server error")
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return c.Stream(http.StatusOK, f.ContentType(), f)
}

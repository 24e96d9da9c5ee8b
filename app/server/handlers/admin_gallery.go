package handlers

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const msgPhotoNotFound = "Photo not found"

func (a *App) GalleryList(c echo.Context) error {
	items, err := a.st.GalleryList(c.Request().Context())
	if err != nil {
		return a.storeErr(c, err, "fetch gallery", msgPhotoNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

// GalleryCreate 手动添加记录，文件需要已经存在并且没有被其他记录使用
func (a *App) GalleryCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var item types.GalleryItem
	if err := c.Bind(&item); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	item.ID = ""
	if item.UploadDate.IsZero() {
		item.UploadDate = time.Now().UTC()
	}

	if err := store.ValidateGalleryItem(&item); err != nil {
		return a.storeErr(c, err, "add photo", msgPhotoNotFound)
	}

	// 记录必须指向已保存的文件
	if exists, err := a.assets.Exists(rctx, item.Filename); err != nil {
		a.l.Error("failed to check photo file", zap.String("filename", item.Filename), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to add photo")
	} else if !exists {
		return a.er(c, http.StatusBadRequest, "File does not exist")
	}

	if err := a.st.GalleryCreate(rctx, &item); err != nil {
		return a.storeErr(c, err, "add photo", msgPhotoNotFound)
	}
	return c.JSON(http.StatusCreated, &item)
}

func (a *App) GalleryUpdate(c echo.Context) error {
	var patch types.GalleryPatch
	if err := c.Bind(&patch); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	item, err := a.st.GalleryUpdate(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return a.storeErr(c, err, "update photo", msgPhotoNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

// GalleryDelete 先删除记录再删除文件，文件删除失败只记录日志
func (a *App) GalleryDelete(c echo.Context) error {
	rctx := c.Request().Context()

	item, err := a.st.GalleryDelete(rctx, c.Param("id"))
	if err != nil {
		return a.storeErr(c, err, "delete photo", msgPhotoNotFound)
	}

	if err = a.assets.Remove(rctx, item.Filename); err != nil {
		a.l.Error("failed to remove photo file", zap.String("id", item.ID), zap.String("filename", item.Filename), zap.Error(err))
	}

	return c.JSON(http.StatusOK, &types.Message{Message: "Photo deleted successfully"})
}

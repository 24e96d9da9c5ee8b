package handlers

import (
	"class-website/app/server/assets"
	"class-website/app/server/constants"
	"class-website/app/server/types"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// 整个请求体的上限：多容纳一个满额文件，使 11 个合规大小的文件得到数量错误而不是大小错误；
// 超过这个上限时统一返回大小错误。另留 1MB 给 multipart 的边界和头部
const uploadMaxBodySize = (constants.UploadMaxFiles+1)*constants.UploadMaxFileSize + 1024*1024

var titleReplacer = strings.NewReplacer("_", " ", "-", " ")

func (a *App) Upload(c echo.Context) error {
	rctx := c.Request().Context()

	// 读取 multipart 表单
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, uploadMaxBodySize)
	form, err := c.MultipartForm()
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return a.er(c, http.StatusBadRequest, assets.ErrTooLarge.Error())
		}
		a.l.Debug("failed to parse multipart form", zap.Error(err))
		return a.er(c, http.StatusBadRequest, assets.ErrNoFiles.Error())
	}
	defer func() {
		_ = form.RemoveAll()
	}()

	// 校验并保存全部文件，任何一个不合格都不会留下文件
	stored, err := a.assets.StoreAll(rctx, form.File[constants.UploadFieldName])
	if err != nil {
		for _, sentinel := range []error{assets.ErrNoFiles, assets.ErrTooManyFiles, assets.ErrTooLarge, assets.ErrNotImage} {
			if errors.Is(err, sentinel) {
				return a.er(c, http.StatusBadRequest, sentinel.Error())
			}
		}
		a.l.Error("failed to store uploaded files", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to upload images")
	}

	// 创建相册记录
	now := time.Now().UTC()
	items := make([]*types.GalleryItem, 0, len(stored))
	for _, asset := range stored {
		items = append(items, &types.GalleryItem{
			Filename:     asset.Filename,
			OriginalName: asset.OriginalName,
			Title:        uploadTitle(asset.OriginalName),
			Description:  constants.UploadDescription,
			UploadDate:   now,
			Size:         asset.Size,
			Mimetype:     asset.Mimetype,
		})
	}
	if err = a.st.GalleryCreate(rctx, items...); err != nil {
		// 记录没有写入，文件也不能留下
		a.assets.Cleanup(rctx, stored)
		a.l.Error("failed to create gallery items", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to upload images")
	}

	res := types.UploadResponse{
		Message: fmt.Sprintf("%d photo(s) uploaded successfully", len(items)),
		Data:    make([]types.GalleryItem, 0, len(items)),
	}
	for _, item := range items {
		res.Data = append(res.Data, *item)
	}
	return c.JSON(http.StatusCreated, &res)
}

// uploadTitle 去掉扩展名，下划线和连字符换成空格
func uploadTitle(originalName string) string {
	return titleReplacer.Replace(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
}

package handlers

import (
	"class-website/app/server/store"
	"class-website/app/server/types"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// er 返回错误，没有指定消息时使用状态码的描述
func (a *App) er(c echo.Context, statusCode int, message ...string) error {
	msg := http.StatusText(statusCode)
	if len(message) > 0 {
		msg = message[0]
	}
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: msg,
	})
}

// storeErr 把存储层错误映射为响应， notFound 是 404 时的消息
func (a *App) storeErr(c echo.Context, err error, action string, notFound string) error {
	if errors.Is(err, store.ErrNotFound) {
		return a.er(c, http.StatusNotFound, notFound)
	}
	if ve, ok := store.IsValidation(err); ok {
		return a.er(c, http.StatusBadRequest, ve.Message)
	}

	a.l.Error("failed to "+action, zap.Error(err))
	return a.er(c, http.StatusInternalServerError, "Failed to "+action)
}

// HTTPErrorHandler 处理路由未命中以及未被 handler 处理的错误
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			err = a.er(c, http.StatusNotFound, "Endpoint not found")
		case http.StatusRequestEntityTooLarge:
			err = a.er(c, http.StatusBadRequest, "Request body too large")
		default:
			if he.Code >= http.StatusInternalServerError {
				a.l.Error("unhandled error", zap.Error(err))
				err = a.er(c, http.StatusInternalServerError, "Internal server error")
			} else {
				err = a.er(c, he.Code)
			}
		}
	} else {
		a.l.Error("unhandled error", zap.Error(err))
		err = a.er(c, http.StatusInternalServerError, "Internal server error")
	}

	if err != nil {
		a.l.Error("failed to write error response", zap.Error(err))
	}
}

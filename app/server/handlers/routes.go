package handlers

import (
	"class-website/app/server/constants"
	"github.com/labstack/echo/v4"
)

// Register 绑定全部路由， auth 只用于需要管理员的接口
func (a *App) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.GET("/health", a.HealthCheck)

	// 认证
	api.POST("/login", a.AuthLogin)
	api.POST("/logout", a.AuthLogout, auth)
	api.GET("/me", a.AuthMe, auth)

	// 上传
	api.POST("/upload", a.Upload, auth)

	// 相册
	api.GET("/gallery", a.GalleryList)
	api.POST("/gallery", a.GalleryCreate, auth)
	api.PUT("/gallery/:id", a.GalleryUpdate, auth)
	api.DELETE("/gallery/:id", a.GalleryDelete, auth)

	// 组织结构
	api.GET("/structure", a.StructureList)
	api.POST("/structure", a.StructureCreate, auth)
	api.PUT("/structure/:id", a.StructureUpdate, auth)
	api.DELETE("/structure/:id", a.StructureDelete, auth)

	// 匿名留言
	api.GET("/confessions", a.ConfessionList)
	api.POST("/confessions", a.ConfessionCreate)
	api.DELETE("/confessions/:id", a.ConfessionDelete, auth)

	// 站点设置与统计
	api.GET("/settings", a.SettingsGet)
	api.PUT("/settings", a.SettingsUpdate, auth)
	api.GET("/stats", a.Stats)

	// 上传的图片
	e.GET(constants.GalleryURLPrefix+":filename", a.GalleryImage)
}

package models

import (
	"gorm.io/gorm"
	"time"
)

type GalleryItem struct {
	gorm.Model

	Filename     string    `gorm:"column:filename;not null;uniqueIndex"` // 生成的文件名，一个文件只属于一条记录
	OriginalName string    `gorm:"column:original_name"`                 // 原始文件名
	Title        string    `gorm:"column:title"`                         // 标题
	Description  string    `gorm:"column:description"`                   // 描述
	Featured     bool      `gorm:"column:featured;default:false"`        // 是否精选
	UploadDate   time.Time `gorm:"column:upload_date"`
	Size         int64     `gorm:"column:size"`
	Mimetype     string    `gorm:"column:mimetype"`
}

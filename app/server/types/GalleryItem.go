package types

import "time"

type GalleryItem struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`     // 存储时生成的文件名
	OriginalName string    `json:"originalName"` // 上传时的原始文件名，只做展示
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Featured     bool      `json:"featured"`
	UploadDate   time.Time `json:"uploadDate"`
	Size         int64     `json:"size"`
	Mimetype     string    `json:"mimetype"`
}

// GalleryPatch 只允许修改展示相关的字段
type GalleryPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

func (p *GalleryPatch) Apply(item *GalleryItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Featured != nil {
		item.Featured = *p.Featured
	}
}
